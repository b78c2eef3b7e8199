package store

import (
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
)

// Seed builds the static data every session starts from.
// Nothing persists between launches.
func Seed() *DB {
	t := func(s string) time.Time {
		ts, _ := time.Parse("2006-01-02 15:04", s)
		return ts
	}

	return &DB{
		Patients: []model.Patient{
			{
				ID: "PT001", FirstName: "Margaret", LastName: "Thompson",
				DOB: "1948-03-22", Phone: "(555) 201-4432", Email: "m.thompson@example.com",
				Address: "123 Oak Street, Springfield", Insurance: "Medicare Part D", MemberID: "MED448812",
				Allergies: "Penicillin",
				Notes:     "Prefers **morning** deliveries.\n\n- Hard of hearing, call twice\n- Caregiver: daughter (Susan)",
			},
			{
				ID: "PT002", FirstName: "John", LastName: "Smith",
				DOB: "1975-11-02", Phone: "(555) 318-9901", Email: "jsmith@example.com",
				Address: "47 Birch Lane, Springfield", Insurance: "BCBS", MemberID: "BCB120045",
			},
			{
				ID: "PT003", FirstName: "Sarah", LastName: "Chen",
				DOB: "1989-07-14", Phone: "(555) 744-2210", Email: "sarah.chen@example.com",
				Address: "902 Willow Court, Springfield", Insurance: "Aetna", MemberID: "AET773210",
				Notes: "Enrolled in med-sync program (`first Monday` each month).",
			},
			{
				ID: "PT004", FirstName: "Robert", LastName: "Garcia",
				DOB: "1961-01-30", Phone: "(555) 655-0187",
				Address: "15 Maple Drive, Springfield", Insurance: "Self Pay",
				Allergies: "Sulfa drugs, latex",
			},
		},
		Prescriptions: []model.Prescription{
			{
				ID: "RX240101", PatientName: "Margaret Thompson", PatientDOB: "1948-03-22",
				Phone: "(555) 201-4432", Medication: "Metformin", Strength: "500mg",
				Quantity: "60", Refills: "3", Directions: "Take one tablet twice daily with meals",
				Prescriber: "Dr. Patel", Insurance: "Medicare Part D", MemberID: "MED448812",
				Status: model.PrescriptionInProgress, Priority: model.PriorityNormal,
				SubmittedAt: t("2024-01-01 08:15"),
			},
			{
				ID: "RX240102", PatientName: "John Smith", PatientDOB: "1975-11-02",
				Medication: "Lisinopril", Strength: "10mg", Quantity: "30", Refills: "1",
				Directions: "Take one tablet daily", Prescriber: "Dr. Johnson",
				Insurance: "BCBS", MemberID: "BCB120045",
				Status: model.PrescriptionReadyForReview, Priority: model.PriorityHigh,
				SubmittedAt: t("2024-01-01 09:02"),
			},
			{
				ID: "RX240103", PatientName: "Sarah Chen",
				Medication: "Amoxicillin", Strength: "250mg", Quantity: "21", Refills: "0",
				Directions: "One capsule three times daily for 7 days", Prescriber: "Dr. Okafor",
				Insurance: "Aetna",
				Status:    model.PrescriptionPendingInsurance, Priority: model.PriorityUrgent,
				SubmittedAt: t("2024-01-01 09:40"),
			},
			{
				ID: "RX240104", PatientName: "Robert Garcia",
				Medication: "Atorvastatin", Strength: "20mg", Quantity: "90", Refills: "2",
				Prescriber: "Dr. Patel", Insurance: "Self Pay",
				Status:     model.PrescriptionOnHold, Priority: model.PriorityLow,
				SubmittedAt: t("2023-12-30 16:20"),
			},
		},
		Appointments: []model.Appointment{
			{
				ID: "APT001", PatientName: "Margaret Thompson", Phone: "(555) 201-4432",
				Date: "2024-01-02", Time: "09:30", Duration: "30 min", Type: "Medication Review",
				Provider: "PharmD Lee", Status: model.AppointmentConfirmed,
			},
			{
				ID: "APT002", PatientName: "Sarah Chen", Phone: "(555) 744-2210",
				Date: "2024-01-02", Time: "11:00", Duration: "15 min", Type: "Flu Vaccination",
				Provider: "PharmD Lee", Status: model.AppointmentPending,
			},
			{
				ID: "APT003", PatientName: "Robert Garcia",
				Date: "2024-01-03", Time: "14:15", Duration: "45 min", Type: "Diabetes Consultation",
				Provider: "PharmD Alvarez", Status: model.AppointmentConfirmed,
				Notes: "Bring glucose log",
			},
		},
		Deliveries: []model.Delivery{
			{
				ID: "DEL001", PatientName: "Margaret Thompson", Address: "123 Oak Street, Springfield",
				Phone: "(555) 201-4432", Items: "Metformin 500mg x60",
				Status: model.DeliveryScheduled, Priority: model.DeliveryPriorityStandard,
				Window: "2:00 PM - 4:00 PM",
			},
			{
				ID: "DEL002", PatientName: "John Smith", Address: "47 Birch Lane, Springfield",
				Items:  "Lisinopril 10mg x30",
				Status: model.DeliveryOutForDelivery, Priority: model.DeliveryPriorityHigh,
				Window: "10:00 AM - 12:00 PM", DriverID: "DRV001", DriverName: "Mike Rodriguez",
			},
			{
				ID: "DEL003", PatientName: "Sarah Chen", Address: "902 Willow Court, Springfield",
				Items:  "Amoxicillin 250mg x21",
				Status: model.DeliveryPreparing, Priority: model.DeliveryPriorityUrgent,
			},
		},
		Drivers: []model.Driver{
			{ID: "DRV001", Name: "Mike Rodriguez", Phone: "(555) 882-1144", Vehicle: "Van 2", OnDuty: true},
			{ID: "DRV002", Name: "Maria Lopez", Phone: "(555) 882-6610", Vehicle: "Van 1", OnDuty: true},
			{ID: "DRV003", Name: "James Okoro", Phone: "(555) 882-9035", Vehicle: "Car 3", OnDuty: false},
		},
		Inventory: []model.InventoryItem{
			{
				NDC: "00093-1048-01", Name: "Lisinopril", Strength: "10mg", Form: "Tablet",
				Quantity: 340, MinStock: 100, UnitCost: 0.12, Vendor: "McKesson", Location: "A-12",
				Expiry: "2025-06-30",
			},
			{
				NDC: "00093-7214-01", Name: "Metformin", Strength: "500mg", Form: "Tablet",
				Quantity: 15, MinStock: 50, UnitCost: 0.08, Vendor: "Cardinal Health", Location: "A-03",
				Expiry: "2025-02-28",
			},
			{
				NDC: "00781-2613-01", Name: "Amoxicillin", Strength: "250mg", Form: "Capsule",
				Quantity: 0, MinStock: 40, UnitCost: 0.22, Vendor: "McKesson", Location: "B-07",
				Expiry: "2024-11-30",
			},
			{
				NDC: "00071-0155-23", Name: "Atorvastatin", Strength: "20mg", Form: "Tablet",
				Quantity: 88, MinStock: 60, UnitCost: 0.15, Vendor: "AmerisourceBergen", Location: "A-19",
				Expiry: "2024-02-15", ExpiringSoon: true,
			},
		},
		Orders: []model.PurchaseOrder{
			{
				ID: "PO240001", Vendor: "McKesson",
				Items: []model.LineItem{
					{Description: "Amoxicillin 250mg Capsule", Quantity: 200, UnitPrice: 0.22, Total: 44},
				},
				Financials: model.Financials{Subtotal: 44, Tax: 3.52, Total: 47.52},
				Status:     model.PurchaseOrderSubmitted, Priority: model.PriorityUrgent,
				OrderedAt: t("2023-12-29 10:00"), ExpectedDate: "2023-12-31",
			},
		},
		Users: []model.User{
			{
				ID: "USR001", Name: "Dana Whitfield", Email: "dana.whitfield@pulserx.example",
				Role: model.RoleAdmin, Department: "Pharmacy", Status: model.UserActive,
				Permissions: []string{model.PermissionAll}, CreatedAt: t("2023-05-02 09:00"),
			},
			{
				ID: "USR002", Name: "Leo Tran", Email: "leo.tran@pulserx.example",
				Role: model.RoleUser, Department: "Fulfillment", Status: model.UserActive,
				Permissions: []string{"prescriptions.read", "deliveries.write"},
				CreatedAt:   t("2023-08-14 09:00"),
			},
			{
				ID: "USR003", Name: "Priya Nair", Email: "priya.nair@pulserx.example",
				Role: model.RoleUser, Department: "Front Desk", Status: model.UserOnLeave,
				Permissions: []string{"appointments.write"}, CreatedAt: t("2023-10-01 09:00"),
			},
		},
		Messages: []model.Message{
			{
				ID: "MSG001", From: "Dr. Johnson", To: "Pharmacy",
				Subject: "RX240102 clarification",
				Body:    "Please hold the Lisinopril fill until labs are back.\n\n**Potassium** was borderline last visit.",
				SentAt:  t("2024-01-01 08:45"), Unread: true,
			},
			{
				ID: "MSG002", From: "Cardinal Health", To: "Pharmacy",
				Subject: "Backorder notice",
				Body:    "Metformin 500mg is on *regional backorder*; expected restock `2024-01-09`.",
				SentAt:  t("2023-12-31 15:10"),
			},
		},
	}
}
