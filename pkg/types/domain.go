package types

// Event categories as reported in EventRecord.Category and StatusResponse.Events.
const (
	CategoryClient  = "client"
	CategoryServer  = "server"
	CategoryScanner = "scanner"
)

// StatusCode is one entry of the GATT or Bluetooth status tables served by
// GET /statuses and printed by `gattmon statuses`.
type StatusCode struct {
	// Table the code belongs to: gatt or bt.
	// example: gatt
	Kind string `json:"kind" example:"gatt"`
	// Numeric code.
	// example: 143
	Code int64 `json:"code" example:"143"`
	// Symbolic name.
	// example: Congested
	Name string `json:"name" example:"Congested"`
}
