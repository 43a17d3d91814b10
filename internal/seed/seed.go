// Package seed provides the friends a session starts with.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/money"
	"github.com/MrJamesThe3rd/splitty/internal/roster"
)

var ErrMissingColumn = errors.New("missing required column")

// Defaults returns the built-in starting roster.
func Defaults(avatarBase string) []*roster.Friend {
	defaults := []struct {
		name    string
		balance int64
	}{
		{name: "Clark", balance: -700},
		{name: "Sarah", balance: 2000},
		{name: "Anthony", balance: 0},
	}

	friends := make([]*roster.Friend, 0, len(defaults))
	for _, d := range defaults {
		friends = append(friends, newFriend(d.name, "", d.balance, avatarBase))
	}

	return friends
}

// Load reads friends from CSV with a header row. Columns are matched by name:
// "name" is required, "image" and "balance" are optional.
func Load(r io.Reader, avatarBase string) ([]*roster.Friend, error) {
	decoded, charset, err := utf8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	slog.Debug("reading seed file", "charset", charset)

	cr := csv.NewReader(decoded)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	nameCol, ok := cols["name"]
	if !ok {
		return nil, fmt.Errorf("%w: name", ErrMissingColumn)
	}

	var friends []*roster.Friend

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}

		name := field(rec, nameCol)
		if name == "" {
			slog.Warn("skipping seed row without a name", "line", line)
			continue
		}

		var balance int64

		if i, ok := cols["balance"]; ok {
			balance, err = money.Parse(field(rec, i))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}

		image := ""
		if i, ok := cols["image"]; ok {
			image = field(rec, i)
		}

		friends = append(friends, newFriend(name, image, balance, avatarBase))
	}

	return friends, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path, avatarBase string) ([]*roster.Friend, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	return Load(f, avatarBase)
}

// Initial picks the starting roster: the file when one is given, otherwise the
// built-in defaults when useDefaults is set, otherwise nobody.
func Initial(file string, useDefaults bool, avatarBase string) ([]*roster.Friend, error) {
	if file != "" {
		return LoadFile(file, avatarBase)
	}

	if useDefaults {
		return Defaults(avatarBase), nil
	}

	return nil, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[i])
}

func newFriend(name, image string, balance int64, avatarBase string) *roster.Friend {
	if avatarBase == "" {
		avatarBase = roster.DefaultAvatarURL
	}

	id := uuid.New()
	if image == "" {
		image = roster.AvatarURL(avatarBase, id)
	}

	return &roster.Friend{
		ID:      id,
		Name:    name,
		Image:   image,
		Balance: balance,
	}
}
