package model

import "time"

type Client struct {
	DocID              string    `firestore:"-" json:"docId"`
	ClientID           string    `firestore:"clientid,omitempty" json:"clientId"` // human-facing sequence number
	ClientName         string    `firestore:"clientname,omitempty" json:"clientName"`
	ContactNumber      string    `firestore:"contactnumber,omitempty" json:"contactNumber"`
	Email              string    `firestore:"email,omitempty" json:"email"`
	Status             string    `firestore:"status,omitempty" json:"status"` // "active" or "inactive"
	Deleted            bool      `firestore:"deleted" json:"deleted"`
	SentToStrategyHead bool      `firestore:"senttostrategyhead" json:"sentToStrategyHead"`
	ProductionNotes    string    `firestore:"productionnotes,omitempty" json:"productionNotes"`
	VideoNotes         string    `firestore:"videonotes,omitempty" json:"videoNotes"`
	GraphicsNotes      string    `firestore:"graphicsnotes,omitempty" json:"graphicsNotes"`
	SocialMediaNotes   string    `firestore:"socialmedianotes,omitempty" json:"socialMediaNotes"`
	StrategyNotes      string    `firestore:"strategynotes,omitempty" json:"strategyNotes"`
	CreatedAt          time.Time `firestore:"createdat,omitempty" json:"createdAt"`
	UpdatedAt          time.Time `firestore:"updatedat,omitempty" json:"updatedAt"`
}

// StrategyHeadClient is the copy written into strategyHeadClients when a
// client is forwarded to the strategy workflow stage.
type StrategyHeadClient struct {
	DocID           string    `firestore:"-" json:"docId"`
	ClientID        string    `firestore:"clientid,omitempty" json:"clientId"`
	ClientName      string    `firestore:"clientname,omitempty" json:"clientName"`
	ContactNumber   string    `firestore:"contactnumber,omitempty" json:"contactNumber"`
	Email           string    `firestore:"email,omitempty" json:"email"`
	Status          string    `firestore:"status,omitempty" json:"status"`
	StrategyNotes   string    `firestore:"strategynotes,omitempty" json:"strategyNotes"`
	Stage           string    `firestore:"stage,omitempty" json:"stage"`
	TaskCount       int       `firestore:"taskcount" json:"taskCount"`
	SentAt          time.Time `firestore:"sentat,omitempty" json:"sentAt"`
	SentBy          string    `firestore:"sentby,omitempty" json:"sentBy"`
	SourceClientDoc string    `firestore:"sourceclientdoc,omitempty" json:"sourceClientDoc"`
}
