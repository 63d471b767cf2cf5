package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Route represents a single "METHOD /path" line in a route file.
type Route struct {
	Method string
	Path   string
}

// Routes loads all routes from a text file. Blank lines and lines starting
// with # are skipped.
func Routes(fileName string) ([]Route, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var routes []Route

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		method, path, _ := strings.Cut(line, " ")
		routes = append(routes, Route{
			Method: method,
			Path:   strings.TrimSpace(path),
		})
	}

	return routes, scanner.Err()
}
