package blocks

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "core/blocks")
