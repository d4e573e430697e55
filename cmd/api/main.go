package main

// @title ECM Connector APIs
// @version 1.0
// @description Gateway to a Nuxeo repository over the automation and CMIS browser bindings.
// @termsOfService https://www.aofiee.dev/

// @contact.name API Support
// @contact.url https://www.aofiee.dev/
// @contact.email aofiee@aofiee.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	_ "ecm-connector/docs"
	protocol "ecm-connector/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
