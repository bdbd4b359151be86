package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns the id when the caller has not set one
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// OrderStatus represents the lifecycle status of a service order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDENTE"
	OrderStatusInstalled OrderStatus = "INSTALADA"
	OrderStatusCancelled OrderStatus = "CANCELADA"
)

// IsValid checks if the OrderStatus is a valid enum value
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInstalled, OrderStatusCancelled:
		return true
	}
	return false
}

// ServiceOrder represents a unit of field work (ordem de serviço)
type ServiceOrder struct {
	BaseModel
	Number       string      `gorm:"type:varchar(20);not null;uniqueIndex;column:order_number"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;index"`
	IssuedAt     time.Time   `gorm:"not null;column:issued_at"`
	DueAt        time.Time   `gorm:"not null;column:due_at;index"`
	InstalledAt  *time.Time  `gorm:"column:installed_at"`
	ClientID     uuid.UUID   `gorm:"type:uuid;not null;index;column:client_id"`
	Client       *Client     `gorm:"foreignKey:ClientID"`
	FieldTechID  uuid.UUID   `gorm:"type:uuid;not null;index;column:field_tech_id"`
	FieldTech    *Technician `gorm:"foreignKey:FieldTechID"`
	AppTechID    *uuid.UUID  `gorm:"type:uuid;column:app_tech_id"`
	AppTech      *Technician `gorm:"foreignKey:AppTechID"`
	CityID       uuid.UUID   `gorm:"type:uuid;not null;index;column:city_id"`
	City         *City       `gorm:"foreignKey:CityID"`
	DoneOnStreet bool        `gorm:"not null;default:false;column:done_on_street"`
	ClosedViaApp bool        `gorm:"not null;default:false;column:closed_via_app"`
	Notes        string      `gorm:"type:text"`
	Kits         []Kit       `gorm:"foreignKey:ServiceOrderID"`
}

// Client represents the person receiving an installation
type Client struct {
	BaseModel
	FullName      string    `gorm:"type:varchar(200);not null;index;column:full_name"`
	CPF           string    `gorm:"type:varchar(14);column:cpf"`
	Address       string    `gorm:"type:varchar(200);not null"`
	AddressNumber string    `gorm:"type:varchar(20);column:address_number"`
	Complement    string    `gorm:"type:varchar(100)"`
	Neighborhood  string    `gorm:"type:varchar(100);index"`
	CityID        uuid.UUID `gorm:"type:uuid;not null;index;column:city_id"`
	City          *City     `gorm:"foreignKey:CityID"`
	CEP           string    `gorm:"type:varchar(10);column:cep"`
	Landmark      string    `gorm:"type:text"`
	Latitude      *float64  `gorm:"type:double precision"`
	Longitude     *float64  `gorm:"type:double precision"`
	Contacts      []Contact `gorm:"polymorphic:Owner;polymorphicValue:cliente"`
}

// Technician represents a field or app-based worker
type Technician struct {
	BaseModel
	Name     string    `gorm:"type:varchar(100);not null;index"`
	FieldID  string    `gorm:"type:varchar(50);column:field_identifier"`
	AppID    string    `gorm:"type:varchar(50);column:app_identifier"`
	Active   bool      `gorm:"not null;default:true"`
	Contacts []Contact `gorm:"polymorphic:Owner;polymorphicValue:tecnico"`
}

// City represents a serviced municipality. Cities without coordinates are
// excluded from map rendering.
type City struct {
	BaseModel
	Name      string   `gorm:"type:varchar(100);not null;index"`
	UF        string   `gorm:"type:varchar(2);not null;column:uf"`
	Region    string   `gorm:"type:varchar(50)"`
	IBGECode  string   `gorm:"type:varchar(10);column:ibge_code"`
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
}

// ContactKind represents the channel of a contact entry
type ContactKind string

const (
	ContactKindPhone     ContactKind = "telefone"
	ContactKindMobile    ContactKind = "celular"
	ContactKindWhatsApp  ContactKind = "whatsapp"
	ContactKindEmail     ContactKind = "email"
	ContactKindInstagram ContactKind = "instagram"
)

// IsValid checks if the ContactKind is a valid enum value
func (k ContactKind) IsValid() bool {
	switch k {
	case ContactKindPhone, ContactKindMobile, ContactKindWhatsApp, ContactKindEmail, ContactKindInstagram:
		return true
	}
	return false
}

// ContactOwnerType identifies which entity a contact belongs to
type ContactOwnerType string

const (
	ContactOwnerClient     ContactOwnerType = "cliente"
	ContactOwnerTechnician ContactOwnerType = "tecnico"
	ContactOwnerSupplier   ContactOwnerType = "fornecedor"
)

// IsValid checks if the ContactOwnerType is a valid enum value
func (t ContactOwnerType) IsValid() bool {
	switch t {
	case ContactOwnerClient, ContactOwnerTechnician, ContactOwnerSupplier:
		return true
	}
	return false
}

// Contact is a reachable channel for a client, technician or supplier.
// At most one contact per owner carries Principal=true.
type Contact struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key"`
	OwnerType ContactOwnerType `gorm:"type:varchar(20);not null;index:idx_contact_owner;column:owner_type"`
	OwnerID   uuid.UUID        `gorm:"type:uuid;not null;index:idx_contact_owner;column:owner_id"`
	Kind      ContactKind      `gorm:"type:varchar(20);not null"`
	Value     string           `gorm:"type:varchar(100);not null"`
	Principal bool             `gorm:"not null;default:false"`
	Position  int              `gorm:"not null;default:0"`
	CreatedAt time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns the id when the caller has not set one
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Supplier represents an equipment vendor (fornecedor)
type Supplier struct {
	BaseModel
	Name     string    `gorm:"type:varchar(100);not null"`
	Kind     string    `gorm:"type:varchar(50);not null"`
	Contacts []Contact `gorm:"polymorphic:Owner;polymorphicValue:fornecedor"`
	Kits     []Kit     `gorm:"foreignKey:SupplierID"`
}

// KitStatus represents where a kit sits in its allocation lifecycle
type KitStatus string

const (
	KitStatusAvailable KitStatus = "DISPONIVEL"
	KitStatusAllocated KitStatus = "ALOCADO"
	KitStatusInstalled KitStatus = "INSTALADO"
)

// IsValid checks if the KitStatus is a valid enum value
func (s KitStatus) IsValid() bool {
	switch s {
	case KitStatusAvailable, KitStatusAllocated, KitStatusInstalled:
		return true
	}
	return false
}

// Kit represents a trackable equipment bundle
type Kit struct {
	BaseModel
	SerialNumber   string      `gorm:"type:varchar(100);not null;uniqueIndex;column:serial_number"`
	Model          string      `gorm:"type:varchar(100)"`
	SupplierID     uuid.UUID   `gorm:"type:uuid;not null;index;column:supplier_id"`
	Supplier       *Supplier   `gorm:"foreignKey:SupplierID"`
	Status         KitStatus   `gorm:"type:varchar(20);not null;index"`
	TechnicianID   *uuid.UUID  `gorm:"type:uuid;column:technician_id"`
	Technician     *Technician `gorm:"foreignKey:TechnicianID"`
	ServiceOrderID *uuid.UUID  `gorm:"type:uuid;column:service_order_id"`
	AllocatedAt    *time.Time  `gorm:"column:allocated_at"`
	InstalledAt    *time.Time  `gorm:"column:installed_at"`
	Components     []Component `gorm:"foreignKey:KitID;constraint:OnDelete:CASCADE"`
}

// ComponentKind represents the hardware type of a kit component
type ComponentKind string

const (
	ComponentKindAntenna ComponentKind = "ANTENA"
	ComponentKindLNB     ComponentKind = "LNB"
	ComponentKindDish    ComponentKind = "PARABOLA"
	ComponentKindCable   ComponentKind = "CABO"
)

// IsValid checks if the ComponentKind is a valid enum value
func (k ComponentKind) IsValid() bool {
	switch k {
	case ComponentKindAntenna, ComponentKindLNB, ComponentKindDish, ComponentKindCable:
		return true
	}
	return false
}

// Component is a single item inside a kit. Cable components carry a length
// in meters instead of a serial number.
type Component struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key"`
	KitID        uuid.UUID     `gorm:"type:uuid;not null;index;column:kit_id"`
	Kind         ComponentKind `gorm:"type:varchar(20);not null"`
	SerialNumber string        `gorm:"type:varchar(100);column:serial_number"`
	LengthMeters *float64      `gorm:"column:length_meters"`
	Quantity     int           `gorm:"not null;default:1"`
	Status       string        `gorm:"type:varchar(20)"`
	CreatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns the id when the caller has not set one
func (c *Component) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// User represents an operator account able to log into the dashboard
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	DisplayName  string `gorm:"type:varchar(200);column:display_name"`
	PasswordHash string `gorm:"type:varchar(200);not null;column:password_hash"`
	Active       bool   `gorm:"not null;default:true"`
}
