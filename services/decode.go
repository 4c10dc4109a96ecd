package services

import (
	"opsdesk/common"
	"opsdesk/model"

	"cloud.google.com/go/firestore"
)

// Decode helpers turn raw collection snapshots into model slices, filling in
// the document id (the Store's opaque key is not stored inside the record).
// Records that fail to decode are skipped and logged rather than failing the
// whole snapshot; the collections are untyped trees and old screens have
// written junk before.

func DecodeTasks(docs []*firestore.DocumentSnapshot) []model.Task {
	tasks := make([]model.Task, 0, len(docs))
	for _, doc := range docs {
		var t model.Task
		if err := doc.DataTo(&t); err != nil {
			common.Log.WithError(err).WithField("doc", doc.Ref.ID).Warn("skipping undecodable task record")
			continue
		}
		t.TaskID = doc.Ref.ID
		tasks = append(tasks, t)
	}
	return tasks
}

func DecodeClients(docs []*firestore.DocumentSnapshot) []model.Client {
	clients := make([]model.Client, 0, len(docs))
	for _, doc := range docs {
		var c model.Client
		if err := doc.DataTo(&c); err != nil {
			common.Log.WithError(err).WithField("doc", doc.Ref.ID).Warn("skipping undecodable client record")
			continue
		}
		c.DocID = doc.Ref.ID
		clients = append(clients, c)
	}
	return clients
}

func DecodeStrategyHeadClients(docs []*firestore.DocumentSnapshot) []model.StrategyHeadClient {
	clients := make([]model.StrategyHeadClient, 0, len(docs))
	for _, doc := range docs {
		var c model.StrategyHeadClient
		if err := doc.DataTo(&c); err != nil {
			common.Log.WithError(err).WithField("doc", doc.Ref.ID).Warn("skipping undecodable strategy client record")
			continue
		}
		c.DocID = doc.Ref.ID
		clients = append(clients, c)
	}
	return clients
}

func DecodeEmployees(docs []*firestore.DocumentSnapshot) []model.Employee {
	employees := make([]model.Employee, 0, len(docs))
	for _, doc := range docs {
		var e model.Employee
		if err := doc.DataTo(&e); err != nil {
			common.Log.WithError(err).WithField("doc", doc.Ref.ID).Warn("skipping undecodable employee record")
			continue
		}
		e.DocID = doc.Ref.ID
		employees = append(employees, e)
	}
	return employees
}
