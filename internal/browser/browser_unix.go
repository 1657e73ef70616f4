//go:build !darwin && !windows

package browser

func candidates(url string) [][]string {
	return [][]string{
		{"xdg-open", url},
		{"sensible-browser", url},
		{"x-www-browser", url},
		{"www-browser", url},
	}
}
