package services

// User-facing notification texts (pt-BR, matching the product UI).
const (
	msgLoginFieldsRequired    = "Email e senha são obrigatórios"
	msgRegisterFieldsRequired = "Todos os campos são obrigatórios"
	msgAuthSuccess            = "Autenticação realizada com sucesso!"
	msgAuthFailed             = "Erro na autenticação"
	msgConnectionError        = "Erro de conexão. Tente novamente."
	msgLogoutSuccess          = "Logout realizado com sucesso"
	msgFileRequired           = "Selecione um arquivo"
	msgFileTypeNotAllowed     = "Tipo de arquivo não permitido"
	msgUploadFailed           = "Erro no upload"

	// msgUploadSuccess is a fmt template taking the processed expense count.
	msgUploadSuccess = "%d despesas processadas com sucesso!"
)
