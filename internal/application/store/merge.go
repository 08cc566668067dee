package store

import "reflect"

// merge complète la réponse du backend avec ce qui a été envoyé: un champ renvoyé non nul
// l'emporte, sinon la valeur de base est conservée. Les backends qui ne renvoient qu'un id
// (ou rien) donnent ainsi un enregistrement exploitable jusqu'au prochain chargement.
func merge[T any](base T, returned *T) T {
	if returned == nil {
		return base
	}
	out := base
	dst := reflect.ValueOf(&out).Elem()
	src := reflect.ValueOf(returned).Elem()
	for i := 0; i < src.NumField(); i++ {
		f := src.Field(i)
		if !dst.Field(i).CanSet() || f.IsZero() {
			continue
		}
		dst.Field(i).Set(f)
	}
	return out
}
