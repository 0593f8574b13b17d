package plan

import _ "embed"

//go:embed schemas/plan-v1.json
var Schema string
