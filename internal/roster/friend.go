package roster

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/money"
)

// DefaultAvatarURL is the placeholder avatar service root used when no other avatar is configured.
const DefaultAvatarURL = "https://i.pravatar.cc/48"

// Standing describes who owes whom for a friend's balance.
type Standing string

const (
	StandingOwes Standing = "owes" // the user owes the friend
	StandingOwed Standing = "owed" // the friend owes the user
	StandingEven Standing = "even"
)

// Friend is a person the user splits bills with.
type Friend struct {
	ID      uuid.UUID
	Name    string
	Image   string
	Balance int64 // Balance in cents. Negative: the user owes the friend.
}

func (f *Friend) Standing() Standing {
	switch {
	case f.Balance < 0:
		return StandingOwes
	case f.Balance > 0:
		return StandingOwed
	}

	return StandingEven
}

// Describe returns the balance phrase shown next to the friend.
func (f *Friend) Describe() string {
	switch f.Standing() {
	case StandingOwes:
		return fmt.Sprintf("You owe %s %s", f.Name, money.FormatAbs(f.Balance))
	case StandingOwed:
		return fmt.Sprintf("%s owes you %s", f.Name, money.FormatAbs(f.Balance))
	}

	return fmt.Sprintf("You and %s are even", f.Name)
}

// AvatarURL derives a per-friend avatar from a service root by adding the friend id
// as the "u" query parameter. Existing query parameters are kept.
func AvatarURL(base string, id uuid.UUID) string {
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Sprintf("%s?u=%s", base, id)
	}

	q := u.Query()
	q.Set("u", id.String())
	u.RawQuery = q.Encode()

	return u.String()
}
