package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wire names follow the dashboard's existing JSON contract (Portuguese
// snake_case), so the frontend keeps working unchanged.

// ContactDTO is the API representation of a contact entry
type ContactDTO struct {
	ID        uuid.UUID   `json:"id"`
	Kind      ContactKind `json:"tipo"`
	Value     string      `json:"valor"`
	Principal bool        `json:"principal"`
}

// ServiceOrderDTO is the API representation of a service order
type ServiceOrderDTO struct {
	ID           uuid.UUID   `json:"id"`
	Number       string      `json:"numero_os"`
	Status       OrderStatus `json:"status"`
	IssuedAt     string      `json:"data_criacao"`
	DueAt        string      `json:"data_vencimento"`
	InstalledAt  string      `json:"data_instalacao,omitempty"`
	ClientID     uuid.UUID   `json:"cliente_id"`
	ClientName   string      `json:"nome_cliente,omitempty"`
	FieldTechID  uuid.UUID   `json:"tecnico_campo_id"`
	FieldTech    string      `json:"tecnico_campo,omitempty"`
	AppTechID    *uuid.UUID  `json:"tecnico_app_id,omitempty"`
	AppTech      string      `json:"tecnico_app,omitempty"`
	CityID       uuid.UUID   `json:"cidade_id"`
	CityName     string      `json:"cidade,omitempty"`
	DoneOnStreet bool        `json:"fez_na_rua"`
	ClosedViaApp bool        `json:"baixou_no_app"`
	Notes        string      `json:"observacoes,omitempty"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

// ClientDTO is the API representation of a client
type ClientDTO struct {
	ID            uuid.UUID    `json:"id"`
	FullName      string       `json:"nome_completo"`
	CPF           string       `json:"cpf,omitempty"`
	Address       string       `json:"endereco"`
	AddressNumber string       `json:"numero,omitempty"`
	Complement    string       `json:"complemento,omitempty"`
	Neighborhood  string       `json:"bairro"`
	CityID        uuid.UUID    `json:"cidade_id"`
	CityName      string       `json:"cidade,omitempty"`
	CEP           string       `json:"cep,omitempty"`
	Landmark      string       `json:"ponto_referencia,omitempty"`
	Latitude      *float64     `json:"latitude,omitempty"`
	Longitude     *float64     `json:"longitude,omitempty"`
	Contacts      []ContactDTO `json:"contatos"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
}

// TechnicianDTO is the API representation of a technician
type TechnicianDTO struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"nome"`
	FieldID   string       `json:"identificacao_campo,omitempty"`
	AppID     string       `json:"identificacao_app,omitempty"`
	Active    bool         `json:"ativo"`
	Contacts  []ContactDTO `json:"contatos"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

// CityDTO is the API representation of a city
type CityDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	UF        string    `json:"uf"`
	Region    string    `json:"regiao,omitempty"`
	IBGECode  string    `json:"codigo_ibge,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// SupplierDTO is the API representation of a supplier
type SupplierDTO struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"nome"`
	Kind     string       `json:"tipo"`
	Contacts []ContactDTO `json:"contatos"`
}

// ComponentDTO is the API representation of a kit component
type ComponentDTO struct {
	ID           uuid.UUID     `json:"id"`
	Kind         ComponentKind `json:"tipo"`
	SerialNumber string        `json:"numero_serie,omitempty"`
	LengthMeters *float64      `json:"quantidade_metros,omitempty"`
	Quantity     int           `json:"quantidade"`
	Status       string        `json:"status,omitempty"`
}

// KitDTO is the API representation of a kit
type KitDTO struct {
	ID             uuid.UUID      `json:"id"`
	SerialNumber   string         `json:"numero_serie"`
	Model          string         `json:"modelo,omitempty"`
	SupplierID     uuid.UUID      `json:"fornecedor_id"`
	SupplierName   string         `json:"fornecedor,omitempty"`
	Status         KitStatus      `json:"status"`
	TechnicianID   *uuid.UUID     `json:"tecnico_id,omitempty"`
	ServiceOrderID *uuid.UUID     `json:"ordem_servico_id,omitempty"`
	AllocatedAt    string         `json:"data_alocacao,omitempty"`
	InstalledAt    string         `json:"data_instalacao,omitempty"`
	Components     []ComponentDTO `json:"componentes"`
}

// Request DTOs

// ContactInput is the request shape for a contact entry
type ContactInput struct {
	Kind      ContactKind `json:"tipo" validate:"required"`
	Value     string      `json:"valor" validate:"required,max=100"`
	Principal bool        `json:"principal"`
}

// CreateServiceOrderRequest is the request to create a service order
type CreateServiceOrderRequest struct {
	Number       string     `json:"numero_os" validate:"required,max=20"`
	Status       string     `json:"status" validate:"required"`
	IssuedAt     time.Time  `json:"data_criacao" validate:"required"`
	DueAt        time.Time  `json:"data_vencimento" validate:"required"`
	InstalledAt  *time.Time `json:"data_instalacao"`
	ClientID     uuid.UUID  `json:"cliente_id" validate:"required"`
	FieldTechID  uuid.UUID  `json:"tecnico_campo_id" validate:"required"`
	AppTechID    *uuid.UUID `json:"tecnico_app_id"`
	CityID       uuid.UUID  `json:"cidade_id" validate:"required"`
	DoneOnStreet bool       `json:"fez_na_rua"`
	ClosedViaApp bool       `json:"baixou_no_app"`
	Notes        string     `json:"observacoes"`
}

// UpdateServiceOrderRequest is the request to update a service order.
// Pointer fields are only applied when present.
type UpdateServiceOrderRequest struct {
	Status       *string    `json:"status"`
	DueAt        *time.Time `json:"data_vencimento"`
	InstalledAt  *time.Time `json:"data_instalacao"`
	FieldTechID  *uuid.UUID `json:"tecnico_campo_id"`
	AppTechID    *uuid.UUID `json:"tecnico_app_id"`
	DoneOnStreet *bool      `json:"fez_na_rua"`
	ClosedViaApp *bool      `json:"baixou_no_app"`
	Notes        *string    `json:"observacoes"`
}

// CreateClientRequest is the request to create a client
type CreateClientRequest struct {
	FullName      string         `json:"nome_completo" validate:"required,max=200"`
	CPF           string         `json:"cpf" validate:"omitempty,max=14"`
	Address       string         `json:"endereco" validate:"required,max=200"`
	AddressNumber string         `json:"numero" validate:"omitempty,max=20"`
	Complement    string         `json:"complemento" validate:"omitempty,max=100"`
	Neighborhood  string         `json:"bairro" validate:"required,max=100"`
	CityID        uuid.UUID      `json:"cidade_id" validate:"required"`
	CEP           string         `json:"cep" validate:"omitempty,max=10"`
	Landmark      string         `json:"ponto_referencia"`
	Latitude      *float64       `json:"latitude"`
	Longitude     *float64       `json:"longitude"`
	Contacts      []ContactInput `json:"contatos" validate:"dive"`
}

// UpdateClientRequest mirrors CreateClientRequest for full updates
type UpdateClientRequest = CreateClientRequest

// CreateTechnicianRequest is the request to create a technician
type CreateTechnicianRequest struct {
	Name     string         `json:"nome" validate:"required,max=100"`
	FieldID  string         `json:"identificacao_campo" validate:"omitempty,max=50"`
	AppID    string         `json:"identificacao_app" validate:"omitempty,max=50"`
	Active   *bool          `json:"ativo"`
	Contacts []ContactInput `json:"contatos" validate:"dive"`
}

// CreateCityRequest is the request to create a city
type CreateCityRequest struct {
	Name      string   `json:"nome" validate:"required,max=100"`
	UF        string   `json:"uf" validate:"required,len=2"`
	Region    string   `json:"regiao" validate:"omitempty,max=50"`
	IBGECode  string   `json:"codigo_ibge" validate:"omitempty,max=10"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ComponentInput is the request shape for a kit component
type ComponentInput struct {
	Kind         ComponentKind `json:"tipo" validate:"required"`
	SerialNumber string        `json:"numero_serie" validate:"omitempty,max=100"`
	LengthMeters *float64      `json:"quantidade_metros"`
	Quantity     int           `json:"quantidade" validate:"omitempty,gte=1"`
	Status       string        `json:"status"`
}

// CreateKitRequest is the request to create a kit
type CreateKitRequest struct {
	SerialNumber string           `json:"numero_serie" validate:"required,max=100"`
	Model        string           `json:"modelo" validate:"omitempty,max=100"`
	SupplierID   uuid.UUID        `json:"fornecedor_id" validate:"required"`
	Status       string           `json:"status"`
	Components   []ComponentInput `json:"componentes" validate:"dive"`
}

// AllocateKitRequest assigns a kit to a technician or service order
type AllocateKitRequest struct {
	TechnicianID   *uuid.UUID `json:"tecnico_id"`
	ServiceOrderID *uuid.UUID `json:"ordem_servico_id"`
}

// CreateSupplierRequest is the request to create a supplier
type CreateSupplierRequest struct {
	Name     string         `json:"nome" validate:"required,max=100"`
	Kind     string         `json:"tipo" validate:"required,max=50"`
	Contacts []ContactInput `json:"contatos" validate:"dive"`
}

// LoginRequest is the request to authenticate an operator
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// PaginatedResponse is the standard envelope for paginated lists
type PaginatedResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// OrderMetricsDTO mirrors the /ordens/metricas contract
type OrderMetricsDTO struct {
	TotalOverall   int64                 `json:"total_geral"`
	TotalInstalled int64                 `json:"total_instaladas"`
	CompletionRate float64               `json:"taxa_conclusao"`
	TotalsByStatus map[OrderStatus]int64 `json:"por_status"`
}

// GroupCountDTO is one chart bucket: a grouping key and its total
type GroupCountDTO struct {
	Key   string `json:"key"`
	Total int    `json:"total"`
}

// DashboardDTO feeds the dashboard cards and charts
type DashboardDTO struct {
	TotalOrders       int             `json:"total_os"`
	CitiesServed      int             `json:"cidades_atendidas"`
	ActiveTechnicians int             `json:"tecnicos_ativos"`
	DailyAverage      float64         `json:"media_diaria"`
	ByCity            []GroupCountDTO `json:"por_cidade"`
	ByTechnician      []GroupCountDTO `json:"por_tecnico"`
	ByDate            []GroupCountDTO `json:"por_data"`
	ByNeighborhood    []GroupCountDTO `json:"por_bairro"`
}

// MapMarkerDTO is a renderable map point derived from joined order,
// client and city records
type MapMarkerDTO struct {
	OrderID     uuid.UUID        `json:"id"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
	Order       *ServiceOrderDTO `json:"ordem,omitempty"`
	Client      *ClientDTO       `json:"cliente,omitempty"`
	City        *CityDTO         `json:"cidade,omitempty"`
}
