package commands

import "fmt"

// HandlerFactory builds a handler from the arguments declared next to it
// in a command descriptor.
type HandlerFactory func(args map[string]string) (Handler, error)

// Catalog lists the compiled-in handlers descriptors may refer to by name.
type Catalog struct {
	Handlers       map[string]HandlerFactory
	Autocompleters map[string]AutocompleteHandler
}

func (c Catalog) Handler(name string, args map[string]string) (Handler, error) {
	factory, ok := c.Handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown handler %q", name)
	}

	h, err := factory(args)
	if err != nil {
		return nil, fmt.Errorf("build handler %q: %w", name, err)
	}
	return h, nil
}

func (c Catalog) Autocompleter(name string) (AutocompleteHandler, error) {
	h, ok := c.Autocompleters[name]
	if !ok {
		return nil, fmt.Errorf("unknown autocomplete handler %q", name)
	}
	return h, nil
}
