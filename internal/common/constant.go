package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the terminal
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// IdempotencyKeyHeader is the HTTP header accepted as an alternative to the
// idempotency_key body field on checkout.
const IdempotencyKeyHeader = "Idempotency-Key"

// InsertOutcome reports what a unique-constrained insert did. Duplicates are a
// normal outcome, not an error.
type InsertOutcome int

const (
	Inserted InsertOutcome = iota + 1
	AlreadyExists
)

func (o InsertOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case AlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}
