package receiptjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/codebatai/pf-verify/internal/domain"
)

// Loader reads receipt documents from disk. A receipt must be a JSON
// object; anything else is a decode error.
type Loader struct{}

func (Loader) Load(path string) (domain.Receipt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrReceiptNotFound, path)
		}
		return nil, fmt.Errorf("read receipt: %w", err)
	}
	var receipt domain.Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReceiptDecode, err)
	}
	return receipt, nil
}
