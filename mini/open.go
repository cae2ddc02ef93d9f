package mini

import "github.com/streamflix-cli/streamflix/open"

var openLink = open.Start
