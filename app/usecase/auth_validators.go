package usecase

import (
	"context"

	"staff-auth/app/domain"
	apperrors "staff-auth/app/utils/errors"
	"staff-auth/app/validation"
)

// Audience-specific login chains. Every store-backed failure collapses to
// the generic wrong-credentials message so the caller cannot tell whether
// the email, the password or the privilege was at fault.

// webappLoginChains validates an admin login. The password chain enforces
// the full complexity policy before comparing against the stored hash.
func (uc *AuthUsecase) webappLoginChains(creds domain.Credentials) []validation.Chain {
	passwordRules := append(
		passwordPolicyRules(creds.Password),
		uc.passwordMatchesRule(creds),
	)

	return []validation.Chain{
		validation.NewChain("email",
			validation.NotEmpty(creds.Email, wrongCredentialsMessage),
			validation.Email(creds.Email, wrongCredentialsMessage),
			uc.userExistsRule(creds.Email),
		),
		validation.NewChain("password", passwordRules...),
		validation.NewChain("",
			uc.privilegeRule(creds.Email, domain.PrivilegeAdmin),
		),
	}
}

// mobileLoginChains validates an employee login. The mobile password chain
// only requires presence; the stored hash comparison does the rest.
func (uc *AuthUsecase) mobileLoginChains(creds domain.Credentials) []validation.Chain {
	return []validation.Chain{
		validation.NewChain("email",
			validation.NotEmpty(creds.Email, wrongCredentialsMessage),
			validation.Email(creds.Email, wrongCredentialsMessage),
			uc.userExistsRule(creds.Email),
		),
		validation.NewChain("password",
			validation.NotEmpty(creds.Password, passwordRequiredMessage),
			uc.passwordMatchesRule(creds),
		),
		validation.NewChain("",
			uc.privilegeRule(creds.Email, domain.PrivilegeEmployee),
		),
	}
}

// passwordPolicyRules is the fixed password complexity chain: non-empty,
// minimum length, lowercase, uppercase, digit, special character, in this
// order, each with its fixed message.
func passwordPolicyRules(password string) []validation.Rule {
	return []validation.Rule{
		validation.NotEmpty(password, passwordRequiredMessage),
		validation.MinLength(password, passwordMinLength, passwordMinLengthMessage),
		validation.Matches(password, lowercasePattern, passwordLowercaseMessage),
		validation.Matches(password, uppercasePattern, passwordUppercaseMessage),
		validation.Matches(password, numberPattern, passwordNumberMessage),
		validation.Matches(password, specialCharPattern, passwordSpecialMessage),
	}
}

// userExistsRule fails with the generic message when no identity carries the
// email. No email-domain check happens at login; every persisted identity
// already carries the organizational domain.
func (uc *AuthUsecase) userExistsRule(email string) validation.Rule {
	return func(ctx context.Context) error {
		user, err := uc.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user == nil {
			return apperrors.NewBadRequest(wrongCredentialsMessage)
		}
		return nil
	}
}

// passwordMatchesRule compares the submitted password against the stored
// hash. It runs its own existence lookup first: it must not dereference a
// record the email chain failed to find.
func (uc *AuthUsecase) passwordMatchesRule(creds domain.Credentials) validation.Rule {
	return func(ctx context.Context) error {
		user, err := uc.userRepo.FindByEmail(ctx, creds.Email)
		if err != nil {
			return err
		}
		if user == nil {
			return apperrors.NewBadRequest(wrongCredentialsMessage)
		}
		if err := uc.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
			return apperrors.NewBadRequest(wrongCredentialsMessage)
		}
		return nil
	}
}

// privilegeRule requires the identity behind the email to carry the
// audience's privilege
func (uc *AuthUsecase) privilegeRule(email string, required domain.Privilege) validation.Rule {
	return func(ctx context.Context) error {
		user, err := uc.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user == nil || user.Privilege != required {
			return apperrors.NewBadRequest(wrongCredentialsMessage)
		}
		return nil
	}
}
