package entity

// DeliveryMethod values match the form's radio input values.
type DeliveryMethod string

const (
	DeliveryUnselected DeliveryMethod = ""
	StorePickup        DeliveryMethod = "storePickup"
	HomeDelivery       DeliveryMethod = "homeDelivery"
)

func (m DeliveryMethod) Chosen() bool {
	return m == StorePickup || m == HomeDelivery
}

func (m DeliveryMethod) Label() string {
	switch m {
	case StorePickup:
		return "Store Pickup"
	case HomeDelivery:
		return "Home Delivery"
	}
	return ""
}
