package dto

type CreateClientRequest struct {
	ClientName       string `json:"clientName" binding:"required"`
	ContactNumber    string `json:"contactNumber" binding:"required,contact10"`
	Email            string `json:"email" binding:"required,email"`
	ProductionNotes  string `json:"productionNotes"`
	VideoNotes       string `json:"videoNotes"`
	GraphicsNotes    string `json:"graphicsNotes"`
	SocialMediaNotes string `json:"socialMediaNotes"`
	StrategyNotes    string `json:"strategyNotes"`
}

type UpdateClientRequest struct {
	ContactNumber    string `json:"contactNumber" binding:"omitempty,contact10"`
	Email            string `json:"email" binding:"omitempty,email"`
	ProductionNotes  string `json:"productionNotes"`
	VideoNotes       string `json:"videoNotes"`
	GraphicsNotes    string `json:"graphicsNotes"`
	SocialMediaNotes string `json:"socialMediaNotes"`
	StrategyNotes    string `json:"strategyNotes"`
}

type SetClientStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}
