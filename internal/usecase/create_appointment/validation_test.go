package create_appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newcase/agendamento-service/internal/domain"
	"github.com/newcase/agendamento-service/pkg/ptr"
	"github.com/newcase/agendamento-service/pkg/types"
)

func validRequest() *Request {
	return &Request{
		CustomerName:       "Maria Oliveira",
		Phone:              "11987654321",
		DeviceModel:        "iPhone 13",
		ServiceName:        "Troca de tela",
		SelectedOption:     ptr.Ptr("Tela original"),
		ProblemDescription: "Tela trincada após queda no chão",
		Date:               time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC),
		StartTime:          types.TimeString("09:30"),
	}
}

func catalogFixture() []*domain.ServiceType {
	return []*domain.ServiceType{
		{Name: "Troca de tela", ExtraOptions: []string{"Tela nacional", "Tela original"}, Active: true},
		{Name: "Troca de bateria", Active: true},
	}
}

func assertFieldError(t *testing.T, err error, field, message string) {
	t.Helper()
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, field, validationErr.Field)
	assert.Equal(t, message, validationErr.Message)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequest_Name(t *testing.T) {
	req := validRequest()
	req.CustomerName = "Jo"
	assertFieldError(t, validateRequest(req), "nome", msgNameTooShort)

	// Whitespace does not count toward the minimum.
	req.CustomerName = "  A  "
	assertFieldError(t, validateRequest(req), "nome", msgNameTooShort)

	req.CustomerName = strings.Repeat("a", 101)
	assertFieldError(t, validateRequest(req), "nome", msgNameTooLong)

	// Multibyte names are measured in runes, not bytes.
	req.CustomerName = "José"
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequest_Phone(t *testing.T) {
	req := validRequest()
	req.Phone = "123456789" // 9 chars
	assertFieldError(t, validateRequest(req), "telefone", msgPhoneInvalid)

	req.Phone = strings.Repeat("9", 21)
	assertFieldError(t, validateRequest(req), "telefone", msgPhoneInvalid)

	req.Phone = "(11) 98765-4321"
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequest_DeviceModel(t *testing.T) {
	req := validRequest()
	req.DeviceModel = "X"
	assertFieldError(t, validateRequest(req), "modelo_celular", msgDeviceModelRequired)

	req.DeviceModel = strings.Repeat("m", 101)
	assertFieldError(t, validateRequest(req), "modelo_celular", msgDeviceModelTooLong)
}

func TestValidateRequest_Service(t *testing.T) {
	req := validRequest()
	req.ServiceName = "   "
	assertFieldError(t, validateRequest(req), "tipo_servico", msgServiceRequired)
}

func TestValidateRequest_Description(t *testing.T) {
	req := validRequest()
	req.ProblemDescription = "curta"
	assertFieldError(t, validateRequest(req), "descricao_problema", msgDescriptionTooShort)

	req.ProblemDescription = strings.Repeat("d", 501)
	assertFieldError(t, validateRequest(req), "descricao_problema", msgDescriptionTooLong)
}

func TestValidateRequest_FirstFailureWins(t *testing.T) {
	// Every field is invalid; the name message is the one reported.
	req := &Request{
		CustomerName:       "x",
		Phone:              "1",
		DeviceModel:        "",
		ServiceName:        "",
		ProblemDescription: "",
	}
	assertFieldError(t, validateRequest(req), "nome", msgNameTooShort)
}

func TestValidateRequest_DateAndTime(t *testing.T) {
	req := validRequest()
	req.Date = time.Time{}
	assert.ErrorIs(t, validateRequest(req), ErrValidation)

	req = validRequest()
	req.StartTime = ""
	assert.ErrorIs(t, validateRequest(req), ErrValidation)

	req = validRequest()
	req.StartTime = "9h30"
	assert.ErrorIs(t, validateRequest(req), ErrValidation)
}

func TestValidateServiceSelection_UnknownService(t *testing.T) {
	req := validRequest()
	req.ServiceName = "Conserto de drone"

	_, err := validateServiceSelection(req, catalogFixture())
	assertFieldError(t, err, "tipo_servico", msgServiceUnknown)
}

func TestValidateServiceSelection_OptionRule(t *testing.T) {
	catalog := catalogFixture()

	// Service with options requires one.
	req := validRequest()
	req.SelectedOption = nil
	_, err := validateServiceSelection(req, catalog)
	assertFieldError(t, err, "opcao_extra", msgOptionRequired)

	req.SelectedOption = ptr.Ptr("   ")
	_, err = validateServiceSelection(req, catalog)
	assertFieldError(t, err, "opcao_extra", msgOptionRequired)

	req.SelectedOption = ptr.Ptr("Tela importada")
	_, err = validateServiceSelection(req, catalog)
	assertFieldError(t, err, "opcao_extra", msgOptionUnknown)

	req.SelectedOption = ptr.Ptr("Tela original")
	selected, err := validateServiceSelection(req, catalog)
	require.NoError(t, err)
	assert.Equal(t, "Troca de tela", selected.Name)

	// Service without options ignores any stray option.
	req = validRequest()
	req.ServiceName = "Troca de bateria"
	req.SelectedOption = ptr.Ptr("Tela original")
	selected, err = validateServiceSelection(req, catalog)
	require.NoError(t, err)
	assert.Equal(t, "Troca de bateria", selected.Name)
}

func TestComposeDescription(t *testing.T) {
	catalog := catalogFixture()

	req := validRequest()
	req.ProblemDescription = "  Tela trincada após queda  "
	composed := composeDescription(req, catalog[0])
	assert.Equal(t, "Opção selecionada: Tela original\n\nTela trincada após queda", composed)

	// No options on the service: the description passes through untouched.
	req.ServiceName = "Troca de bateria"
	composed = composeDescription(req, catalog[1])
	assert.Equal(t, "Tela trincada após queda", composed)
}
