package handdrawn

import "fmt"

const (
	greyMin = 0xb4
	greyMax = 0xec
)

// greyForID picks a stable light grey fill for an element.
func greyForID(id string) string {
	v := greyMin + int(hash(id, 0)%uint64(greyMax-greyMin+1))
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}
