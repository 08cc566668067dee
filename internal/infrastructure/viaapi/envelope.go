package viaapi

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Le backend renvoie ses listes sous plusieurs formes selon l'endpoint et la version:
//
//	[ {...}, ... ]
//	{ "data": [ ... ] }
//	{ "data": { "data": [ ... ], "current_page": 1 } }   (paginateur Laravel)
//	{ "data": { "<entité>": [ ... ] } }
//	{ "data": { ...un seul enregistrement... } }
//	{ "<entité>": [ ... ] }
//
// Toute la normalisation se fait ici; le store ne voit que des tableaux typés.

// listPayload extrait le tableau JSON d'une réponse liste. ok=false si aucune forme connue
// ne correspond (l'appelant obtient alors une liste vide).
func listPayload(raw []byte, keys ...string) (arr string, ok bool) {
	if !gjson.ValidBytes(raw) {
		return "[]", false
	}
	root := gjson.ParseBytes(raw)
	if root.IsArray() {
		return root.Raw, true
	}
	if !root.IsObject() {
		return "[]", false
	}

	data := root.Get("data")
	switch {
	case data.IsArray():
		return data.Raw, true
	case data.IsObject():
		if inner := data.Get("data"); inner.IsArray() {
			return inner.Raw, true
		}
		for _, k := range keys {
			if inner := data.Get(k); inner.IsArray() {
				return inner.Raw, true
			}
		}
		if data.Get("id").Exists() {
			return "[" + data.Raw + "]", true
		}
	}

	for _, k := range keys {
		if v := root.Get(k); v.IsArray() {
			return v.Raw, true
		}
	}
	return "[]", false
}

// objectPayload extrait l'objet d'une réponse unitaire: {data:{...}}, {<clé>:{...}} ou l'objet nu.
func objectPayload(raw []byte, keys ...string) (string, error) {
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("api: réponse JSON invalide")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return "", fmt.Errorf("api: objet attendu, reçu %s", root.Type)
	}
	if data := root.Get("data"); data.IsObject() {
		for _, k := range keys {
			if inner := data.Get(k); inner.IsObject() {
				return inner.Raw, nil
			}
		}
		return data.Raw, nil
	}
	for _, k := range keys {
		if v := root.Get(k); v.IsObject() {
			return v.Raw, nil
		}
	}
	return root.Raw, nil
}

func decodeList[T any](c *Client, raw []byte, what string, keys ...string) ([]T, error) {
	arr, ok := listPayload(raw, keys...)
	if !ok {
		c.log.Warn().Str("resource", what).Msg("api: forme de liste inattendue, liste vide utilisée")
	}
	out := make([]T, 0)
	if err := json.Unmarshal([]byte(arr), &out); err != nil {
		return nil, fmt.Errorf("api: décoder liste %s: %w", what, err)
	}
	return out, nil
}

func decodeObject[T any](raw []byte, what string, keys ...string) (*T, error) {
	obj, err := objectPayload(raw, keys...)
	if err != nil {
		return nil, fmt.Errorf("api: %s: %w", what, err)
	}
	var out T
	if err := json.Unmarshal([]byte(obj), &out); err != nil {
		return nil, fmt.Errorf("api: décoder %s: %w", what, err)
	}
	return &out, nil
}
