package lifecycle

// Trigger represents an event that can cause a state transition
type Trigger string

const (
	TriggerValidate Trigger = "VALIDATE"
	TriggerReject   Trigger = "REJECT"
	TriggerDispatch Trigger = "DISPATCH"
)

// String returns the string representation of the trigger
func (t Trigger) String() string {
	return string(t)
}
