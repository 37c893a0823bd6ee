package models

// EmailTokenRequest is the body of POST /accounts/email-token. The server
// verifies MasterPasswordHash against the account's current salt and mails a
// verification token to NewEmail.
type EmailTokenRequest struct {
	NewEmail           string `json:"newEmail"`
	MasterPasswordHash string `json:"masterPasswordHash"`
}

// AuthenticateWith fills the identity-proof field from authentication data
// built under the account's existing salt.
func (r *EmailTokenRequest) AuthenticateWith(data MasterPasswordAuthenticationData) {
	r.MasterPasswordHash = data.MasterPasswordAuthenticationHash
}

// NewEmailTokenRequest builds a token request from new-format authentication
// data.
func NewEmailTokenRequest(authenticationData MasterPasswordAuthenticationData, newEmail string) EmailTokenRequest {
	request := EmailTokenRequest{NewEmail: newEmail}
	request.AuthenticateWith(authenticationData)
	return request
}

// EmailChangeRequest is the body of POST /accounts/email. MasterPasswordHash
// proves identity under the existing salt; NewMasterPasswordHash and Key are
// the credentials the account switches to once the server accepts the change.
type EmailChangeRequest struct {
	NewEmail           string `json:"newEmail"`
	Token              string `json:"token"`
	MasterPasswordHash string `json:"masterPasswordHash"`

	NewMasterPasswordHash string `json:"newMasterPasswordHash"`

	// Key is the user key wrapped under the new-salt master key.
	Key string `json:"key"`
}

// AuthenticateWith fills the identity-proof field from authentication data
// built under the account's existing salt. The new-salt credentials set by
// [NewEmailChangeRequest] are not touched, so the two hashes cannot be
// swapped by construction.
func (r *EmailChangeRequest) AuthenticateWith(data MasterPasswordAuthenticationData) {
	r.MasterPasswordHash = data.MasterPasswordAuthenticationHash
}

// NewEmailChangeRequest builds a confirm request from new-format credentials:
// authentication and unlock data both computed under the new salt. The caller
// completes the request with NewEmail, Token and AuthenticateWith.
func NewEmailChangeRequest(newAuthenticationData MasterPasswordAuthenticationData, newUnlockData MasterPasswordUnlockData) EmailChangeRequest {
	return EmailChangeRequest{
		NewMasterPasswordHash: newAuthenticationData.MasterPasswordAuthenticationHash,
		Key:                   newUnlockData.MasterKeyWrappedUserKey,
	}
}
