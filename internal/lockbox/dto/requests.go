package dto

// UpsertRequest é o lote enviado pelo job de ingestão
// games e picks podem vir vazios; a ordem dentro do lote importa
// (id duplicado no mesmo lote: o último vence)
type UpsertRequest struct {
	Games []Game `json:"games"`
	Picks []Pick `json:"picks"`
}
