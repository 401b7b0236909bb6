package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded keyset cursor from the date and
// creation time of the last voucher of a page.
func EncodeToken(date time.Time, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%s|%s", date.UTC().Format(timeFormat), createdAt.UTC().Format(timeFormat))
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a cursor made by EncodeToken. Malformed tokens are
// validation errors.
func DecodeToken(token string) (time.Time, time.Time, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.KindValidation, "invalid pagination token format (base64 decode)", err)
	}

	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.KindValidation, "invalid pagination token format (date parse)", err)
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.KindValidation, "invalid pagination token format (created_at parse)", err)
	}

	return date, createdAt, nil
}
