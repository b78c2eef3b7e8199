package model

import "time"

// Entities are flat records. There is no referential integrity between them:
// a Delivery's driver is a name/id copied at assignment time, not a foreign key.

type PrescriptionStatus string

const (
	PrescriptionReadyForReview   PrescriptionStatus = "Ready for Review"
	PrescriptionInProgress       PrescriptionStatus = "In Progress"
	PrescriptionVerification     PrescriptionStatus = "Verification"
	PrescriptionPendingInsurance PrescriptionStatus = "Pending Insurance"
	PrescriptionCompleted        PrescriptionStatus = "Completed"
	PrescriptionOnHold           PrescriptionStatus = "On Hold"
)

type Priority string

const (
	PriorityUrgent Priority = "Urgent"
	PriorityHigh   Priority = "High"
	PriorityNormal Priority = "Normal"
	PriorityLow    Priority = "Low"
)

type Prescription struct {
	ID string `json:"id"`

	PatientName string `json:"patientName"`
	PatientDOB  string `json:"patientDob,omitempty"` // YYYY-MM-DD
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`

	Medication string `json:"medication"`
	Strength   string `json:"strength,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
	Refills    string `json:"refills,omitempty"`
	Directions string `json:"directions,omitempty"`

	Prescriber      string `json:"prescriber,omitempty"`
	PrescriberPhone string `json:"prescriberPhone,omitempty"`
	DEANumber       string `json:"deaNumber,omitempty"`

	Insurance string `json:"insurance,omitempty"`
	MemberID  string `json:"memberId,omitempty"`
	GroupNum  string `json:"groupNumber,omitempty"`

	Status      PrescriptionStatus `json:"status"`
	Priority    Priority           `json:"priority"`
	SubmittedAt time.Time          `json:"submittedAt"`
}

type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentCheckedIn AppointmentStatus = "checked-in"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID          string            `json:"id"`
	PatientName string            `json:"patientName"`
	Phone       string            `json:"phone,omitempty"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Time        string            `json:"time"` // HH:MM
	Duration    string            `json:"duration,omitempty"`
	Type        string            `json:"type,omitempty"`
	Provider    string            `json:"provider,omitempty"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
}

type DeliveryStatus string

const (
	DeliveryScheduled      DeliveryStatus = "Scheduled"
	DeliveryPreparing      DeliveryStatus = "Preparing"
	DeliveryOutForDelivery DeliveryStatus = "Out for Delivery"
	DeliveryDelivered      DeliveryStatus = "Delivered"
	DeliveryFailed         DeliveryStatus = "Failed Delivery"
	DeliveryReturned       DeliveryStatus = "Returned"
)

// DeliveryPriority uses "Standard" where prescriptions use "Normal".
type DeliveryPriority string

const (
	DeliveryPriorityUrgent   DeliveryPriority = "Urgent"
	DeliveryPriorityHigh     DeliveryPriority = "High"
	DeliveryPriorityStandard DeliveryPriority = "Standard"
	DeliveryPriorityLow      DeliveryPriority = "Low"
)

type Delivery struct {
	ID          string           `json:"id"`
	PatientName string           `json:"patientName"`
	Address     string           `json:"address"`
	Phone       string           `json:"phone,omitempty"`
	Items       string           `json:"items,omitempty"`
	Status      DeliveryStatus   `json:"status"`
	Priority    DeliveryPriority `json:"priority"`
	Window      string           `json:"window,omitempty"` // e.g. "2:00 PM - 4:00 PM"

	// Denormalized driver snapshot, copied at assignment time.
	DriverID   string `json:"driverId,omitempty"`
	DriverName string `json:"driverName,omitempty"`

	EstimatedDate string `json:"estimatedDate,omitempty"` // YYYY-MM-DD
	Notes         string `json:"notes,omitempty"`
}

type Driver struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Vehicle string `json:"vehicle,omitempty"`
	OnDuty  bool   `json:"onDuty"`
}

type StockStatus string

const (
	StockInStock  StockStatus = "In Stock"
	StockLow      StockStatus = "Low Stock"
	StockOut      StockStatus = "Out of Stock"
	StockExpiring StockStatus = "Expiring Soon"
)

type InventoryItem struct {
	NDC      string  `json:"ndc"`
	Name     string  `json:"name"`
	Strength string  `json:"strength,omitempty"`
	Form     string  `json:"form,omitempty"`
	Quantity int     `json:"quantity"`
	MinStock int     `json:"minStock"`
	UnitCost float64 `json:"unitCost"`
	Vendor   string  `json:"vendor,omitempty"`
	Location string  `json:"location,omitempty"`
	Expiry   string  `json:"expiry,omitempty"` // YYYY-MM-DD

	// ExpiringSoon is set independently of the quantity-derived status.
	// An item can be below minimum stock and expiring at the same time.
	ExpiringSoon bool `json:"expiringSoon,omitempty"`
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type Financials struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type PurchaseOrderStatus string

const (
	PurchaseOrderPending   PurchaseOrderStatus = "Pending"
	PurchaseOrderSubmitted PurchaseOrderStatus = "Submitted"
	PurchaseOrderReceived  PurchaseOrderStatus = "Received"
)

type PurchaseOrder struct {
	ID         string              `json:"id"`
	Vendor     string              `json:"vendor"`
	Items      []LineItem          `json:"items"`
	Financials Financials          `json:"financials"`
	Status     PurchaseOrderStatus `json:"status"`
	Priority   Priority            `json:"priority"`
	OrderedAt  time.Time           `json:"orderedAt"`
	// ExpectedDate is derived from the order priority at creation time.
	ExpectedDate string `json:"expectedDate,omitempty"`
}

type Patient struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DOB       string `json:"dob,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Insurance string `json:"insurance,omitempty"`
	MemberID  string `json:"memberId,omitempty"`
	Allergies string `json:"allergies,omitempty"`
	// Notes is markdown; the TUI renders it with glamour.
	Notes string `json:"notes,omitempty"`
}

func (p Patient) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type UserStatus string

const (
	UserActive     UserStatus = "active"
	UserInactive   UserStatus = "inactive"
	UserOnLeave    UserStatus = "on-leave"
	UserTerminated UserStatus = "terminated"
)

// PermissionAll is the sentinel meaning every permission.
const PermissionAll = "all"

type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        UserRole   `json:"userRole"`
	Department  string     `json:"department,omitempty"`
	Status      UserStatus `json:"status"`
	Permissions []string   `json:"permissions,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// HasPermission honors the "all" sentinel.
func (u User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == PermissionAll || p == perm {
			return true
		}
	}
	return false
}

type Message struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	// Body is markdown; the TUI renders it with glamour.
	Body   string    `json:"body"`
	SentAt time.Time `json:"sentAt"`
	Unread bool      `json:"unread,omitempty"`
}
