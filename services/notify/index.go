package notify

import (
	"context"

	"go.uber.org/zap"
)

// Mailer and Texter are the outbound collaborator seams; real providers
// are wired by the deployment, not by this repo.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, token string) error
	SendPasswordResetEmail(ctx context.Context, email, token string) error
}

type Texter interface {
	SendVerificationCode(ctx context.Context, phoneNumber, code string) error
}

// LogNotifier writes outbound messages to the log. It stands in for the
// real mail/SMS providers in development and in tests.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.L()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendVerificationEmail(ctx context.Context, email, token string) error {
	n.logger.Info("verification email dispatched",
		zap.String("email", email),
		zap.Int("token_length", len(token)),
	)
	return nil
}

func (n *LogNotifier) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	n.logger.Info("password reset email dispatched",
		zap.String("email", email),
		zap.Int("token_length", len(token)),
	)
	return nil
}

func (n *LogNotifier) SendVerificationCode(ctx context.Context, phoneNumber, code string) error {
	n.logger.Info("verification code dispatched",
		zap.String("phone_number", phoneNumber),
		zap.Int("code_length", len(code)),
	)
	return nil
}
