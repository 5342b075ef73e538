package cli

import (
	"github.com/spf13/cobra"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

var contactInput adopcion.ContactRequestInput

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Ask to join the platform as a shelter or rescuer",
	Long: `Submit an onboarding request for your shelter or rescue group.

The platform team reviews requests and gets back to you by email or
phone to set up your organization.`,
	RunE: runContact,
}

func init() {
	f := contactCmd.Flags()
	f.StringVar(&contactInput.NombreRefugio, "refugio", "", "shelter or group name (required)")
	f.StringVar(&contactInput.NombreContacto, "contacto", "", "contact person (required)")
	f.StringVar(&contactInput.Email, "email", "", "contact email (required)")
	f.StringVar(&contactInput.Telefono, "telefono", "", "contact phone (required)")
	f.StringVar(&contactInput.Ciudad, "ciudad", "", "city")
	f.StringVar(&contactInput.CantidadAnimales, "animales", "", "how many animals you care for")
	f.StringVar(&contactInput.Descripcion, "descripcion", "", "tell us about your work")
	f.StringVar(&contactInput.Instagram, "instagram", "", "Instagram handle")
	f.StringVar(&contactInput.Facebook, "facebook", "", "Facebook page")
	_ = contactCmd.MarkFlagRequired("refugio")
	_ = contactCmd.MarkFlagRequired("contacto")
	_ = contactCmd.MarkFlagRequired("email")
	_ = contactCmd.MarkFlagRequired("telefono")

	rootCmd.AddCommand(contactCmd)
}

func runContact(cmd *cobra.Command, args []string) error {
	created, err := client.Contact.Create(cmd.Context(), contactInput)
	if err != nil {
		return apiError("could not send the request", err)
	}
	if jsonOut {
		return printJSON(created)
	}
	printer.Success("Request sent. The platform team will contact you at %s.", created.Email)
	return nil
}
