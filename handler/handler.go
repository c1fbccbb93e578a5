package handler

import (
	"github.com/sirupsen/logrus"

	"promptfn/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
