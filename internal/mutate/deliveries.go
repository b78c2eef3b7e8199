package mutate

import (
	"strings"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"
)

type DeliveryResult struct {
	Delivery *model.Delivery
	Changed  bool
}

// AssignDriver copies the driver's name/id onto the delivery (a denormalized
// snapshot, not a foreign key: renaming the driver later does not touch the
// delivery) and moves a Scheduled delivery to Preparing.
func AssignDriver(db *store.DB, deliveryID, driverID string) (DeliveryResult, error) {
	deliveryID = strings.TrimSpace(deliveryID)
	driverID = strings.TrimSpace(driverID)
	if db == nil || deliveryID == "" {
		return DeliveryResult{}, ValidationError{Field: "delivery id", Message: "required"}
	}
	del, ok := db.FindDelivery(deliveryID)
	if !ok {
		return DeliveryResult{}, NotFoundError{Kind: "delivery", ID: deliveryID}
	}
	drv, ok := db.FindDriver(driverID)
	if !ok {
		return DeliveryResult{}, NotFoundError{Kind: "driver", ID: driverID}
	}
	if del.DriverID == drv.ID {
		return DeliveryResult{Delivery: del, Changed: false}, nil
	}
	del.DriverID = drv.ID
	del.DriverName = drv.Name
	if del.Status == model.DeliveryScheduled {
		del.Status = model.DeliveryPreparing
	}
	return DeliveryResult{Delivery: del, Changed: true}, nil
}

// SetDeliveryStatus sets any status from the edit form. There is no state
// machine enforcement here on purpose: the edit dialog allows any transition.
func SetDeliveryStatus(db *store.DB, deliveryID string, status model.DeliveryStatus) (DeliveryResult, error) {
	deliveryID = strings.TrimSpace(deliveryID)
	if db == nil || deliveryID == "" {
		return DeliveryResult{}, ValidationError{Field: "delivery id", Message: "required"}
	}
	del, ok := db.FindDelivery(deliveryID)
	if !ok {
		return DeliveryResult{}, NotFoundError{Kind: "delivery", ID: deliveryID}
	}
	if del.Status == status {
		return DeliveryResult{Delivery: del, Changed: false}, nil
	}
	del.Status = status
	return DeliveryResult{Delivery: del, Changed: true}, nil
}
