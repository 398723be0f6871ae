package dom

// https://dom.spec.whatwg.org/#interface-characterdata
type CharacterData struct {
	Data string
}

// https://dom.spec.whatwg.org/#interface-text
type Text struct {
	*CharacterData
}

// https://dom.spec.whatwg.org/#interface-comment
type Comment struct {
	*CharacterData
}

// https://dom.spec.whatwg.org/#interface-processinginstruction
type ProcessingInstruction struct {
	*CharacterData
	Target string
}

// https://dom.spec.whatwg.org/#interface-documenttype
type DocumentType struct {
	Name     string
	PublicID string
	SystemID string
}

// https://dom.spec.whatwg.org/#interface-documentfragment
type DocumentFragment struct{}
