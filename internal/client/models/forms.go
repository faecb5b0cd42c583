package models

// AuthForm is the input buffer for the authentication screen. Login uses only
// Email and Password; registration requires every field. The validate tags
// carry the required-field rules; which subset applies depends on the
// operation (see services.SessionController).
type AuthForm struct {
	Email             string `json:"email" validate:"required"`
	Password          string `json:"password" validate:"required"`
	PartnerUserID     string `json:"partner_user_id" validate:"required"`
	PartnerUserSecret string `json:"partner_user_secret" validate:"required"`
	PolicyID          string `json:"policy_id" validate:"required"`
}

// FileSelection is the spreadsheet the user picked for upload. The file is
// not read until submission; only the extension is checked at selection time.
type FileSelection struct {
	Name string
	Path string
}
