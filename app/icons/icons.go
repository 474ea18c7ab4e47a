// Package icons maps the symbolic icon names stored on categories to the fixed
// set of icons the presentation layers know how to draw.
package icons

// Icon is a symbolic icon understood by the presentation layers.
type Icon string

const (
	Package     Icon = "package"
	Shirt       Icon = "shirt"
	Coffee      Icon = "coffee"
	ShoppingBag Icon = "shopping-bag"
	Backpack    Icon = "backpack"
	Pen         Icon = "pen"
	Gift        Icon = "gift"
	Watch       Icon = "watch"
	Umbrella    Icon = "umbrella"
	Key         Icon = "key"
	Sticker     Icon = "sticker"
	Award       Icon = "award"
	Tag         Icon = "tag"
	Crown       Icon = "crown"
	Notebook    Icon = "notebook"
	Smartphone  Icon = "smartphone"
	Truck       Icon = "truck"
)

// Default is returned for unrecognized names.
const Default = Package

var registry = map[string]Icon{
	"Package":     Package,
	"Shirt":       Shirt,
	"Coffee":      Coffee,
	"ShoppingBag": ShoppingBag,
	"Backpack":    Backpack,
	"Pen":         Pen,
	"PenTool":     Pen,
	"Gift":        Gift,
	"Watch":       Watch,
	"Umbrella":    Umbrella,
	"Key":         Key,
	"KeyRound":    Key,
	"Sticker":     Sticker,
	"Award":       Award,
	"Tag":         Tag,
	"Crown":       Crown,
	"Notebook":    Notebook,
	"BookOpen":    Notebook,
	"Smartphone":  Smartphone,
	"Truck":       Truck,
}

// Resolve returns the icon registered under name, or Default.
// Names are matched exactly, as stored on the category.
func Resolve(name string) Icon {
	if icon, ok := registry[name]; ok {
		return icon
	}
	return Default
}

// Known reports whether name is a registered icon name.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}
