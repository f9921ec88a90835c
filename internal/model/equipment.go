package model

// Equipment is an inventory item that can be requested on a booking.
// Available is edited by hand and is not tied to Quantity or to any
// booking; a value above Quantity is accepted.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name, also used in Booking.EquipmentList.
//  Quantity  – number of units owned.
//  Available – number of units the admin marks as lendable.
type Equipment struct {
    ID        uint64 `json:"id"`        // equipment.id
    Name      string `json:"name"`      // equipment.name
    Quantity  int    `json:"quantity"`  // equipment.quantity
    Available int    `json:"available"` // equipment.available
}

// EquipmentPatch carries a partial equipment update.  Nil fields are left
// untouched.
type EquipmentPatch struct {
    Name      *string
    Quantity  *int
    Available *int
}

// Apply copies the non-nil fields of p onto e.
func (p EquipmentPatch) Apply(e *Equipment) {
    if p.Name != nil {
        e.Name = *p.Name
    }
    if p.Quantity != nil {
        e.Quantity = *p.Quantity
    }
    if p.Available != nil {
        e.Available = *p.Available
    }
}
