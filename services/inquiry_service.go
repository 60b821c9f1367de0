package services

import (
	"errors"

	"github.com/BadarHossain1/maplenest-admin-api/models"
)

var ErrInquiryClosed = errors.New("inquiry is closed")

// ReplyStatus is the status a contact or ticket takes after a reply. Open
// records move to in-progress; closed records take no replies.
func ReplyStatus(current string) (string, error) {
	switch current {
	case models.InquiryStatusClosed:
		return "", ErrInquiryClosed
	case models.InquiryStatusOpen, "":
		return models.InquiryStatusInProgress, nil
	}
	return current, nil
}
