package speech

import "os"

func writeFile(path, body string) error {
	return os.WriteFile(path, []byte(body+"\n"), 0o600)
}
