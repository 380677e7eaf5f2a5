package usecase

import (
	"context"
	"net/http"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// MailGateway abstracts the dispatch gateway so the usecase can be tested
// without a live SMTP relay.
type MailGateway interface {
	Send(ctx context.Context, data email.ContactEmailData) (string, error)
}

type contactUsecase struct {
	gateway  MailGateway
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(gateway MailGateway, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		gateway:  gateway,
		validate: validate,
	}
}

// SubmitContact validates the submission, resolves its category and hands it
// to the mail gateway. Validation happens strictly before any network I/O;
// a rejected submission costs no side effects.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) (string, error) {
	// Trim before validating so whitespace-only fields count as missing
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := uc.validate.Struct(req); err != nil {
		return "", apperror.Validation(validation.FieldErrors(err))
	}

	category := domain.NormalizeCategory(req.EmailType)

	messageID, err := uc.gateway.Send(ctx, email.ContactEmailData{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Message:     req.Message,
		Category:    string(category),
	})
	if err != nil {
		kind := email.KindOf(err)
		logger.Log.Error("contact dispatch failed",
			"kind", string(kind),
			"category", string(category),
			"error", err,
		)

		switch kind {
		case email.KindServiceUnavailable:
			return "", apperror.ServiceUnavailable(kind.PublicMessage(), err)
		default:
			// Recipient misconfiguration and transport failures both
			// surface as a server error with the classified message
			return "", apperror.New(http.StatusInternalServerError, kind.PublicMessage(), err)
		}
	}

	logger.Log.Info("contact message dispatched",
		"message_id", messageID,
		"category", string(category),
	)

	return messageID, nil
}
