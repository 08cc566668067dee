// dashtoken émet un jeton opérateur pour l'API du tableau de bord.
//
// Usage: go run ./cmd/dashtoken -user rakoto -role comptable [-exp 480]
// Le secret, l'émetteur et la durée par défaut viennent de la configuration (JWT_SECRET, ...).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/viaconsulting/dashboard-huiles/pkg/config"
	"github.com/viaconsulting/dashboard-huiles/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration: %v\n", err)
		os.Exit(1)
	}

	user := flag.String("user", "", "identifiant de l'opérateur")
	role := flag.String("role", jwt.RoleMagasinier, "rôle: admin, comptable ou magasinier")
	exp := flag.Int("exp", cfg.JWT.Expiration, "durée de validité en minutes")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "-user requis")
		flag.Usage()
		os.Exit(2)
	}
	if !jwt.ValidRole(*role) {
		fmt.Fprintf(os.Stderr, "Rôle inconnu %q (admin, comptable, magasinier)\n", *role)
		os.Exit(2)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, *exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Générer le jeton: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
