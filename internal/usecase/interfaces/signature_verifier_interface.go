package interfaces

//go:generate mockgen -source=signature_verifier_interface.go -destination=mocks/mock_signature_verifier_interface.go -package=mock_interfaces

// ISignatureVerifier authenticates provider notifications.
type ISignatureVerifier interface {
	Verify(paymentID, requestID, signatureHeader string) error
}
