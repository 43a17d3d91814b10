package form

import (
	"fmt"

	"github.com/MrJamesThe3rd/splitty/internal/money"
)

// Payer is the party who paid the whole bill upfront.
type Payer string

const (
	PayerUser   Payer = "user"
	PayerFriend Payer = "friend"
)

func ParsePayer(s string) (Payer, error) {
	switch Payer(s) {
	case PayerUser, PayerFriend:
		return Payer(s), nil
	case "":
		return PayerUser, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPayer, s)
}

// SplitBill is the split-bill form state. Amounts are in cents.
type SplitBill struct {
	total int64
	paid  int64
	payer Payer
}

func NewSplitBill() *SplitBill {
	return &SplitBill{payer: PayerUser}
}

func (s *SplitBill) Total() int64      { return s.total }
func (s *SplitBill) PaidByUser() int64 { return s.paid }
func (s *SplitBill) Payer() Payer      { return s.payer }

// FriendShare is the part of the bill that is the friend's: total minus the user's share.
func (s *SplitBill) FriendShare() int64 {
	return s.total - s.paid
}

func (s *SplitBill) SetTotal(cents int64) error {
	if cents < 0 {
		return money.ErrNegativeAmount
	}

	s.total = cents

	return nil
}

func (s *SplitBill) SetTotalText(text string) error {
	cents, err := money.ParseNonNegative(text)
	if err != nil {
		return err
	}

	return s.SetTotal(cents)
}

// SetPaidByUser rejects amounts above the current total and keeps the previous value.
func (s *SplitBill) SetPaidByUser(cents int64) error {
	if cents < 0 {
		return money.ErrNegativeAmount
	}

	if cents > s.total {
		return ErrPaidExceedsTotal
	}

	s.paid = cents

	return nil
}

func (s *SplitBill) SetPaidByUserText(text string) error {
	cents, err := money.ParseNonNegative(text)
	if err != nil {
		return err
	}

	return s.SetPaidByUser(cents)
}

func (s *SplitBill) SetPayer(p Payer) error {
	parsed, err := ParsePayer(string(p))
	if err != nil {
		return err
	}

	s.payer = parsed

	return nil
}

func (s *SplitBill) TogglePayer() Payer {
	if s.payer == PayerUser {
		s.payer = PayerFriend
	} else {
		s.payer = PayerUser
	}

	return s.payer
}

// Delta returns the signed amount to add to the friend's balance.
// When the user paid, the friend now owes their share; when the friend paid,
// the user now owes their own share.
func (s *SplitBill) Delta() (int64, error) {
	if s.total == 0 {
		return 0, ErrTotalRequired
	}

	if s.paid == 0 {
		return 0, ErrPaidRequired
	}

	if s.paid > s.total {
		return 0, ErrPaidExceedsTotal
	}

	if s.payer == PayerFriend {
		return -s.paid, nil
	}

	return s.FriendShare(), nil
}
