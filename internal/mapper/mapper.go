package mapper

import (
	"time"

	"github.com/campoflow/fieldops-api/internal/analytics"
	"github.com/campoflow/fieldops-api/internal/domain"
)

const timeFormat = "2006-01-02T15:04:05Z"
const dateFormat = "2006-01-02"

func formatDate(t time.Time) string {
	return t.UTC().Format(dateFormat)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

// ToServiceOrderDTO converts a ServiceOrder to its API representation
func ToServiceOrderDTO(order *domain.ServiceOrder) domain.ServiceOrderDTO {
	dto := domain.ServiceOrderDTO{
		ID:           order.ID,
		Number:       order.Number,
		Status:       order.Status,
		IssuedAt:     formatDate(order.IssuedAt),
		DueAt:        formatDate(order.DueAt),
		InstalledAt:  formatDatePtr(order.InstalledAt),
		ClientID:     order.ClientID,
		FieldTechID:  order.FieldTechID,
		AppTechID:    order.AppTechID,
		CityID:       order.CityID,
		DoneOnStreet: order.DoneOnStreet,
		ClosedViaApp: order.ClosedViaApp,
		Notes:        order.Notes,
		CreatedAt:    order.CreatedAt.Format(timeFormat),
		UpdatedAt:    order.UpdatedAt.Format(timeFormat),
	}
	if order.Client != nil {
		dto.ClientName = order.Client.FullName
	}
	if order.FieldTech != nil {
		dto.FieldTech = order.FieldTech.Name
	}
	if order.City != nil {
		dto.CityName = order.City.Name
	}
	if order.AppTech != nil {
		dto.AppTech = order.AppTech.Name
	}
	return dto
}

// ToContactDTO converts a Contact to its API representation
func ToContactDTO(contact *domain.Contact) domain.ContactDTO {
	return domain.ContactDTO{
		ID:        contact.ID,
		Kind:      contact.Kind,
		Value:     contact.Value,
		Principal: contact.Principal,
	}
}

// ToContactDTOs converts a contact list preserving order
func ToContactDTOs(contacts []domain.Contact) []domain.ContactDTO {
	dtos := make([]domain.ContactDTO, len(contacts))
	for i := range contacts {
		dtos[i] = ToContactDTO(&contacts[i])
	}
	return dtos
}

// ToClientDTO converts a Client to its API representation
func ToClientDTO(client *domain.Client) domain.ClientDTO {
	dto := domain.ClientDTO{
		ID:            client.ID,
		FullName:      client.FullName,
		CPF:           client.CPF,
		Address:       client.Address,
		AddressNumber: client.AddressNumber,
		Complement:    client.Complement,
		Neighborhood:  client.Neighborhood,
		CityID:        client.CityID,
		CEP:           client.CEP,
		Landmark:      client.Landmark,
		Latitude:      client.Latitude,
		Longitude:     client.Longitude,
		Contacts:      ToContactDTOs(client.Contacts),
		CreatedAt:     client.CreatedAt.Format(timeFormat),
		UpdatedAt:     client.UpdatedAt.Format(timeFormat),
	}
	if client.City != nil {
		dto.CityName = client.City.Name
	}
	return dto
}

// ToTechnicianDTO converts a Technician to its API representation
func ToTechnicianDTO(tech *domain.Technician) domain.TechnicianDTO {
	return domain.TechnicianDTO{
		ID:        tech.ID,
		Name:      tech.Name,
		FieldID:   tech.FieldID,
		AppID:     tech.AppID,
		Active:    tech.Active,
		Contacts:  ToContactDTOs(tech.Contacts),
		CreatedAt: tech.CreatedAt.Format(timeFormat),
		UpdatedAt: tech.UpdatedAt.Format(timeFormat),
	}
}

// ToCityDTO converts a City to its API representation
func ToCityDTO(city *domain.City) domain.CityDTO {
	return domain.CityDTO{
		ID:        city.ID,
		Name:      city.Name,
		UF:        city.UF,
		Region:    city.Region,
		IBGECode:  city.IBGECode,
		Latitude:  city.Latitude,
		Longitude: city.Longitude,
		CreatedAt: city.CreatedAt.Format(timeFormat),
		UpdatedAt: city.UpdatedAt.Format(timeFormat),
	}
}

// ToSupplierDTO converts a Supplier to its API representation
func ToSupplierDTO(supplier *domain.Supplier) domain.SupplierDTO {
	return domain.SupplierDTO{
		ID:       supplier.ID,
		Name:     supplier.Name,
		Kind:     supplier.Kind,
		Contacts: ToContactDTOs(supplier.Contacts),
	}
}

// ToComponentDTO converts a Component to its API representation
func ToComponentDTO(c *domain.Component) domain.ComponentDTO {
	return domain.ComponentDTO{
		ID:           c.ID,
		Kind:         c.Kind,
		SerialNumber: c.SerialNumber,
		LengthMeters: c.LengthMeters,
		Quantity:     c.Quantity,
		Status:       c.Status,
	}
}

// ToKitDTO converts a Kit to its API representation
func ToKitDTO(kit *domain.Kit) domain.KitDTO {
	components := make([]domain.ComponentDTO, len(kit.Components))
	for i := range kit.Components {
		components[i] = ToComponentDTO(&kit.Components[i])
	}
	dto := domain.KitDTO{
		ID:             kit.ID,
		SerialNumber:   kit.SerialNumber,
		Model:          kit.Model,
		SupplierID:     kit.SupplierID,
		Status:         kit.Status,
		TechnicianID:   kit.TechnicianID,
		ServiceOrderID: kit.ServiceOrderID,
		AllocatedAt:    formatDatePtr(kit.AllocatedAt),
		InstalledAt:    formatDatePtr(kit.InstalledAt),
		Components:     components,
	}
	if kit.Supplier != nil {
		dto.SupplierName = kit.Supplier.Name
	}
	return dto
}

// ToGroupCountDTOs converts analytics buckets preserving order
func ToGroupCountDTOs(groups []analytics.GroupCount) []domain.GroupCountDTO {
	dtos := make([]domain.GroupCountDTO, len(groups))
	for i, g := range groups {
		dtos[i] = domain.GroupCountDTO{Key: g.Key, Total: g.Total}
	}
	return dtos
}

// ToMapMarkerDTO converts a resolved marker to its API representation
func ToMapMarkerDTO(m *analytics.Marker) domain.MapMarkerDTO {
	dto := domain.MapMarkerDTO{
		OrderID:     m.OrderID,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Title:       m.Title,
		Description: m.Description,
		Color:       m.Color,
	}
	if m.Order != nil {
		order := ToServiceOrderDTO(m.Order)
		dto.Order = &order
	}
	if m.Client != nil {
		client := ToClientDTO(m.Client)
		dto.Client = &client
	}
	if m.City != nil {
		city := ToCityDTO(m.City)
		dto.City = &city
	}
	return dto
}
