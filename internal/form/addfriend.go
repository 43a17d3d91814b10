package form

import (
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/roster"
)

// AddFriend holds the add-friend form fields until submit.
type AddFriend struct {
	Name  string
	Image string

	defaultImage string
}

// NewAddFriend returns an empty form whose avatar field starts at defaultImage.
func NewAddFriend(defaultImage string) *AddFriend {
	if defaultImage == "" {
		defaultImage = roster.DefaultAvatarURL
	}

	return &AddFriend{Image: defaultImage, defaultImage: defaultImage}
}

func (f *AddFriend) DefaultImage() string { return f.defaultImage }

// ValidateName is usable directly as an input validator.
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrNameRequired
	}

	return nil
}

func ValidateImage(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrAvatarRequired
	}

	return nil
}

func (f *AddFriend) Validate() error {
	if err := ValidateName(f.Name); err != nil {
		return err
	}

	return ValidateImage(f.Image)
}

// Build creates the friend described by the form, with a fresh id and zero balance.
// The form itself is left untouched.
func (f *AddFriend) Build() (*roster.Friend, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()

	return &roster.Friend{
		ID:    id,
		Name:  strings.TrimSpace(f.Name),
		Image: roster.AvatarURL(strings.TrimSpace(f.Image), id),
	}, nil
}

// Reset restores the fields to their defaults.
func (f *AddFriend) Reset() {
	f.Name = ""
	f.Image = f.defaultImage
}
