package channel

// Kind identifies a notification transport
type Kind string

const (
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
	KindPush  Kind = "push"
)

var builtinKinds = map[Kind]bool{
	KindEmail: true,
	KindSMS:   true,
	KindPush:  true,
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// IsBuiltin returns true if the kind is one of the built-in transports.
// Custom kinds (composite groups, decorated variants) are still valid
// registry keys; they are just not backed by a built-in transport.
func (k Kind) IsBuiltin() bool {
	return builtinKinds[k]
}
