package domain

// KeyKind is the outcome of classifying a free-text Stellar key.
type KeyKind string

const (
	KeyPublic  KeyKind = "public"
	KeyPrivate KeyKind = "private"
	KeyInvalid KeyKind = "invalid"
)

// KeyClassification is produced fresh per classification call.
// Public and Private always carry the account address in DerivedPublicKey;
// Invalid never does and always carries ErrorMessage.
type KeyClassification struct {
	Kind             KeyKind
	DerivedPublicKey string
	ErrorMessage     string
}

func (c KeyClassification) Valid() bool {
	return c.Kind == KeyPublic || c.Kind == KeyPrivate
}

// InvalidKey builds an Invalid classification with the given message.
func InvalidKey(msg string) KeyClassification {
	return KeyClassification{Kind: KeyInvalid, ErrorMessage: msg}
}
