package usecase

import (
	"context"

	"github.com/google/uuid"

	"staff-auth/app/domain"
	apperrors "staff-auth/app/utils/errors"
	"staff-auth/app/validation"
)

// Validator chains for the admin user-mutation paths. Unlike login, these
// carry specific, field-attributed messages: they only fire on top of an
// already-authenticated admin session.

// createUserChains validates a create-user submission: full name, unique
// company-domain email, full password policy.
func (uc *UserUsecase) createUserChains(input domain.CreateUserInput) []validation.Chain {
	chains := []validation.Chain{}

	for _, name := range []struct{ field, value string }{
		{"firstName", input.FirstName},
		{"firstLastName", input.FirstLastName},
		{"secondLastName", input.SecondLastName},
	} {
		chains = append(chains, validation.NewChain(name.field,
			validation.NotEmpty(name.value, fullNameRequiredMessage),
			validation.MaxLength(name.value, nameMaxLength, nameMaxLengthMessage),
		))
	}

	chains = append(chains, validation.NewChain("email",
		validation.NotEmpty(input.Email, emailRequiredMessage),
		validation.Email(input.Email, emailFormatMessage),
		uc.emailAvailableRule(input.Email, uuid.Nil),
		uc.companyDomainRule(input.Email),
	))

	chains = append(chains, validation.NewChain("password", passwordPolicyRules(input.Password)...))

	return chains
}

// updateUserChains validates an update submission. Optional fields only get
// their chains when present; the tail requires an employee target and at
// least one supplied field.
func (uc *UserUsecase) updateUserChains(id uuid.UUID, update domain.UserUpdate) []validation.Chain {
	chains := []validation.Chain{}

	for _, name := range []struct{ field, value string }{
		{"firstName", update.FirstName},
		{"firstLastName", update.FirstLastName},
		{"secondLastName", update.SecondLastName},
	} {
		if name.value == "" {
			continue
		}
		chains = append(chains, validation.NewChain(name.field,
			validation.MaxLength(name.value, nameMaxLength, nameMaxLengthMessage),
		))
	}

	if update.Email != "" {
		chains = append(chains, validation.NewChain("email",
			validation.Email(update.Email, emailFormatMessage),
			uc.emailAvailableRule(update.Email, id),
			uc.companyDomainRule(update.Email),
		))
	}

	if update.Password != "" {
		chains = append(chains, validation.NewChain("password",
			validation.MinLength(update.Password, passwordMinLength, passwordMinLengthMessage),
			validation.Matches(update.Password, lowercasePattern, passwordLowercaseMessage),
			validation.Matches(update.Password, uppercasePattern, passwordUppercaseMessage),
			validation.Matches(update.Password, numberPattern, passwordNumberMessage),
			validation.Matches(update.Password, specialCharPattern, passwordSpecialMessage),
		))
	}

	chains = append(chains,
		validation.NewChain("", uc.targetIsEmployeeRule(id, updateForbiddenMessage)),
		validation.NewChain("", atLeastOneFieldRule(update)),
	)

	return chains
}

// deleteUserChains requires an existing employee target. Existence and
// privilege share one chain: the privilege rule dereferences the record the
// existence rule found.
func (uc *UserUsecase) deleteUserChains(id uuid.UUID) []validation.Chain {
	return []validation.Chain{
		validation.NewChain("",
			uc.targetExistsRule(id),
			uc.targetIsEmployeeRule(id, deleteForbiddenMessage),
		),
	}
}

// emailAvailableRule fails when another identity already holds the email.
// selfID exempts the record being updated from its own email.
func (uc *UserUsecase) emailAvailableRule(email string, selfID uuid.UUID) validation.Rule {
	return func(ctx context.Context) error {
		user, err := uc.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user != nil && user.ID != selfID {
			return apperrors.NewNotFound(emailTakenMessage)
		}
		return nil
	}
}

// companyDomainRule requires the email's domain segment to equal the
// organizational domain
func (uc *UserUsecase) companyDomainRule(email string) validation.Rule {
	return func(ctx context.Context) error {
		if domain.EmailDomain(email) != uc.companyDomain {
			return apperrors.NewBadRequest(invalidDomainMessage)
		}
		return nil
	}
}

// targetExistsRule fails when the target identity is not registered
func (uc *UserUsecase) targetExistsRule(id uuid.UUID) validation.Rule {
	return func(ctx context.Context) error {
		user, err := uc.userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return apperrors.NewNotFound(userNotRegisteredMessage)
		}
		return nil
	}
}

// targetIsEmployeeRule rejects mutations whose target is not an employee.
// A missing target passes here; the lifecycle controller reports it as
// not-found with the proper status.
func (uc *UserUsecase) targetIsEmployeeRule(id uuid.UUID, message string) validation.Rule {
	return func(ctx context.Context) error {
		user, err := uc.userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user != nil && !user.IsEmployee() {
			return apperrors.NewBadRequest(message)
		}
		return nil
	}
}

// atLeastOneFieldRule rejects an all-empty update before the store is touched
func atLeastOneFieldRule(update domain.UserUpdate) validation.Rule {
	return func(ctx context.Context) error {
		if update.IsEmpty() {
			return apperrors.NewBadRequest(emptyUpdateMessage)
		}
		return nil
	}
}
