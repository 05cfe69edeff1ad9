package create_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/newcase/agendamento-service/internal/domain"
)

// Customer-facing validation messages, rendered verbatim in the booking form.
const (
	msgNameTooShort        = "Nome deve ter no mínimo 3 caracteres"
	msgNameTooLong         = "Nome deve ter no máximo 100 caracteres"
	msgPhoneInvalid        = "Telefone inválido"
	msgDeviceModelRequired = "Informe o modelo do celular"
	msgDeviceModelTooLong  = "Modelo deve ter no máximo 100 caracteres"
	msgServiceRequired     = "Selecione um tipo de serviço"
	msgServiceUnknown      = "Tipo de serviço inválido"
	msgOptionRequired      = "Selecione uma opção para este serviço"
	msgOptionUnknown       = "Opção inválida para este serviço"
	msgDescriptionTooShort = "Descreva o problema com mais detalhes"
	msgDescriptionTooLong  = "Descrição deve ter no máximo 500 caracteres"
)

// validateRequest checks the form fields in display order and stops at the
// first failure, mirroring what the booking form shows the customer.
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if utf8.RuneCountInString(name) < domain.MinCustomerNameLength {
		return &ValidationError{Field: "nome", Message: msgNameTooShort}
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return &ValidationError{Field: "nome", Message: msgNameTooLong}
	}

	phone := strings.TrimSpace(req.Phone)
	if utf8.RuneCountInString(phone) < domain.MinPhoneLength || utf8.RuneCountInString(phone) > domain.MaxPhoneLength {
		return &ValidationError{Field: "telefone", Message: msgPhoneInvalid}
	}

	model := strings.TrimSpace(req.DeviceModel)
	if utf8.RuneCountInString(model) < domain.MinDeviceModelLength {
		return &ValidationError{Field: "modelo_celular", Message: msgDeviceModelRequired}
	}
	if utf8.RuneCountInString(model) > domain.MaxDeviceModelLength {
		return &ValidationError{Field: "modelo_celular", Message: msgDeviceModelTooLong}
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		return &ValidationError{Field: "tipo_servico", Message: msgServiceRequired}
	}

	description := strings.TrimSpace(req.ProblemDescription)
	if utf8.RuneCountInString(description) < domain.MinDescriptionLength {
		return &ValidationError{Field: "descricao_problema", Message: msgDescriptionTooShort}
	}
	if utf8.RuneCountInString(description) > domain.MaxDescriptionLength {
		return &ValidationError{Field: "descricao_problema", Message: msgDescriptionTooLong}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrValidation)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrValidation, err)
	}

	return nil
}

// validateServiceSelection matches the submitted service name against the
// active catalog and applies the extra-option rule.
func validateServiceSelection(req *Request, catalog []*domain.ServiceType) (*domain.ServiceType, error) {
	var selected *domain.ServiceType
	for _, st := range catalog {
		if st.Name == strings.TrimSpace(req.ServiceName) {
			selected = st
			break
		}
	}

	if selected == nil {
		return nil, &ValidationError{Field: "tipo_servico", Message: msgServiceUnknown}
	}

	if selected.RequiresOption() {
		if req.SelectedOption == nil || strings.TrimSpace(*req.SelectedOption) == "" {
			return nil, &ValidationError{Field: "opcao_extra", Message: msgOptionRequired}
		}
		if !selected.HasOption(strings.TrimSpace(*req.SelectedOption)) {
			return nil, &ValidationError{Field: "opcao_extra", Message: msgOptionUnknown}
		}
	}

	return selected, nil
}

// composeDescription prepends the selected option to the problem description
// so the workshop sees both in a single field.
func composeDescription(req *Request, service *domain.ServiceType) string {
	description := strings.TrimSpace(req.ProblemDescription)

	if service.RequiresOption() && req.SelectedOption != nil {
		option := strings.TrimSpace(*req.SelectedOption)
		return fmt.Sprintf("%s: %s\n\n%s", domain.OptionLabel, option, description)
	}

	return description
}
