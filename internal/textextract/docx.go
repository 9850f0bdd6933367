package textextract

import (
	"os"

	"code.sajari.com/docconv"
)

func readDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", err
	}

	return text, nil
}
