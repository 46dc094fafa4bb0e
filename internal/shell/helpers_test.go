package shell

import "time"

const frame = 16 * time.Millisecond
