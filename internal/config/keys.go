package config

import "fmt"

// Item is one configuration entry as shown by "maildex config list".
type Item struct {
	Key    string
	Values []string
}

// Keys lists the settable configuration keys in display order.
var Keys = []string{
	"database.path",
	"user.name",
	"user.primary_email",
	"user.other_email",
	"new.tags",
	"new.ignore",
	"search.exclude_tags",
}

// Get returns the values stored under a dotted key.
func (c *Config) Get(key string) ([]string, error) {
	switch key {
	case "database.path":
		return []string{c.Database.Path}, nil
	case "user.name":
		return []string{c.User.Name}, nil
	case "user.primary_email":
		return []string{c.User.PrimaryEmail}, nil
	case "user.other_email":
		return c.User.OtherEmail, nil
	case "new.tags":
		return c.New.Tags, nil
	case "new.ignore":
		return c.New.Ignore, nil
	case "search.exclude_tags":
		return c.Search.ExcludeTags, nil
	default:
		return nil, fmt.Errorf("config: unknown key: %s", key)
	}
}

// Set replaces the values stored under a dotted key. Single-valued keys take
// exactly one value.
func (c *Config) Set(key string, values []string) error {
	single := func() (string, error) {
		if len(values) != 1 {
			return "", fmt.Errorf("config: %s takes exactly one value", key)
		}
		return values[0], nil
	}

	switch key {
	case "database.path":
		v, err := single()
		if err != nil {
			return err
		}
		c.Database.Path = v
	case "user.name":
		v, err := single()
		if err != nil {
			return err
		}
		c.User.Name = v
	case "user.primary_email":
		v, err := single()
		if err != nil {
			return err
		}
		c.User.PrimaryEmail = v
	case "user.other_email":
		c.User.OtherEmail = values
	case "new.tags":
		c.New.Tags = values
	case "new.ignore":
		c.New.Ignore = values
	case "search.exclude_tags":
		c.Search.ExcludeTags = values
	default:
		return fmt.Errorf("config: unknown key: %s", key)
	}
	return nil
}

// Items returns every known key with its current values, in display order.
func (c *Config) Items() []Item {
	items := make([]Item, 0, len(Keys))
	for _, key := range Keys {
		values, _ := c.Get(key)
		items = append(items, Item{Key: key, Values: values})
	}
	return items
}
