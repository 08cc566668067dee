package entity

// Statuts observés dans le flux métier. Le backend est le seul à les attribuer;
// ces constantes servent à l'affichage, aux filtres et à la lecture des transitions.
const (
	// Agréage (tests qualité)
	StatusEnAttenteTest = "En attente de test"
	StatusEnCoursTest   = "En cours de test"
	StatusValide        = "Validé"
	StatusRefuse        = "Refusé"
	StatusDefinitif     = "Définitif"

	// Paiement
	StatusEnAttentePaiement = "En attente de paiement"
	StatusPaiementIncomplet = "Paiement incomplet"
	StatusPaye              = "Payé"
	StatusNonPaye           = "Non payé"
	StatusImpaye            = "Impayé"

	// Livraison
	StatusLivre = "Livré"
)

// AgreageProvisoire statuts d'une réception encore en test qualité.
var AgreageProvisoire = []string{StatusEnAttenteTest, StatusEnCoursTest}

// AgreageDefinitif statuts d'une réception dont l'agréage est tranché.
var AgreageDefinitif = []string{StatusValide, StatusRefuse, StatusDefinitif}
