package sheetsync

// AppointmentRow is the payload the spreadsheet webhook expects. Field names
// follow the sheet columns, which are in Portuguese like the rest of the
// customer-facing surface.
type AppointmentRow struct {
	Code         string `json:"codigo"`
	CustomerName string `json:"nome"`
	Phone        string `json:"telefone"`
	DeviceModel  string `json:"modelo"`
	ServiceName  string `json:"servico"`
	Description  string `json:"descricao"`
	Date         string `json:"data"`
	StartTime    string `json:"horario"`
	Status       string `json:"status"`
	DeliveryDate string `json:"dataEntrega"`
	CreatedAt    string `json:"dataCriacao"`
}
