package certificateRoutes

import (
	certificateController "chainlearn/controllers/certificate"
	certificateValidator "chainlearn/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up certificate issuance and listing
func SetupCertificateRoutes(app *fiber.App) {
	certGroup := app.Group("/api/certificates")

	certGroup.Post("/issue", certificateValidator.Issue(), certificateController.IssueCertificate)
	certGroup.Get("/:userId", certificateController.GetUserCertificates)
}
