package configs

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadTOML loads a TOML file into a struct. Keys present in the file but
// unknown to the struct are returned as an error so typos surface early.
func LoadTOML(filePath string, data any) error {
	meta, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown setting %q", undecoded[0].String())
	}
	return nil
}
