package config

import (
	"fmt"
	"os"
)

func Template() string {
	return defaultTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(defaultTemplate), 0o600)
}

const defaultTemplate = `definitions_path = ["definitions"]
row_policy = "strict"

[table]
dictionary = "element.table"
master_dir = "tablesMasterDir"
local_dir = "tablesLocalDir"

[context]
tablesMasterDir = "bufr/tables/0/wmo/[masterTablesVersionNumber]"
masterTablesVersionNumber = "36"
# tablesLocalDir = "bufr/tables/0/local/[localTablesVersionNumber]/[bufrHeaderCentre]/[bufrHeaderSubCentre]"

[server]
name = "bufrdesc"
addr = ":9300"
cors_origins = ["http://localhost:3000"]
`
