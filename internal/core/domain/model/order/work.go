package order

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"
)

// Delivery is the work the seller attached on the latest delivery.
type Delivery struct {
	Message     string
	Files       []string
	DeliveredAt time.Time
}

// NewDelivery trims its inputs and requires a message or at least one file reference.
func NewDelivery(message string, files []string, at time.Time) (Delivery, error) {
	message = strings.TrimSpace(message)

	refs := make([]string, 0, len(files))
	for _, f := range files {
		if f = strings.TrimSpace(f); f != "" {
			refs = append(refs, f)
		}
	}

	if message == "" && len(refs) == 0 {
		return Delivery{}, errs.NewValueIsRequiredErrorWithCause("delivery",
			errors.New("a message or at least one file is required"))
	}
	return Delivery{Message: message, Files: refs, DeliveredAt: at}, nil
}

func (d Delivery) clone() Delivery {
	d.Files = append([]string(nil), d.Files...)
	return d
}

// RevisionRequest is the buyer's latest request for changes.
type RevisionRequest struct {
	Message     string
	RequestedAt time.Time
}

func NewRevisionRequest(instructions string, at time.Time) (RevisionRequest, error) {
	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		return RevisionRequest{}, errs.NewValueIsRequiredError("revision instructions")
	}
	return RevisionRequest{Message: instructions, RequestedAt: at}, nil
}
