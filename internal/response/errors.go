package response

// ErrCode is a typed error code enum for consistent API error
// identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation        ErrCode = "VALIDATION_ERROR"
	ErrInvalidID         ErrCode = "INVALID_ID"
	ErrInvalidPayload    ErrCode = "INVALID_PAYLOAD"
	ErrInvalidTimeWindow ErrCode = "INVALID_TIME_WINDOW"
	ErrInvalidWeekday    ErrCode = "INVALID_WEEKDAY"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Import ────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"
	ErrDecodeFailed    ErrCode = "DECODE_FAILED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validação falhou. Verifique os dados informados."
	case ErrInvalidID:
		return "Formato de ID inválido."
	case ErrInvalidPayload:
		return "Corpo da requisição inválido."
	case ErrInvalidTimeWindow:
		return "O horário de fim deve ser posterior ao horário de início."
	case ErrInvalidWeekday:
		return "Dia da semana inválido. Use Segunda a Sábado."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Recurso não encontrado."

	// ─── Import ────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "Envio de arquivo é obrigatório."
	case ErrUnsupportedFile:
		return "Formato não suportado. Envie .csv, .xlsx ou .xls."
	case ErrFileTooLarge:
		return "O arquivo excede o tamanho máximo permitido."
	case ErrDecodeFailed:
		return "Falha ao processar o arquivo. Verifique o conteúdo e o cabeçalho."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Ocorreu um erro interno no servidor."
	default:
		return "Ocorreu um erro inesperado."
	}
}
