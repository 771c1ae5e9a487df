package constants

// User roles. Students never authenticate on the submission path;
// the role only gates the admin and enseignant surfaces.
const (
	RoleAdmin      = "admin"
	RoleEnseignant = "enseignant"
	RoleEtudiant   = "etudiant"
)

var AllRoles = []string{RoleAdmin, RoleEnseignant, RoleEtudiant}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
