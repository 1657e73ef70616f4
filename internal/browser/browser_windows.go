//go:build windows

package browser

func candidates(url string) [][]string {
	return [][]string{{"rundll32", "url.dll,FileProtocolHandler", url}}
}
