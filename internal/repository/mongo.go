package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Riaraujo/testecrud/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	pastasCollection   = "pastas"
	provasCollection   = "provas"
	questoesCollection = "questoes"
)

var newestFirstSort = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// NewMongo wires the repositories on top of db. When transactions is set
// the Transactor wraps work in a session transaction, which needs a replica
// set or sharded cluster.
func NewMongo(db *mongo.Database, transactions bool) *Store {
	tx := &mongoTransactor{client: db.Client(), enabled: transactions}
	return &Store{
		Driver:     "mongo",
		Folders:    &mongoFolderRepository{coll: db.Collection(pastasCollection)},
		Exams:      &mongoExamRepository{coll: db.Collection(provasCollection)},
		Questions:  &mongoQuestionRepository{coll: db.Collection(questoesCollection)},
		Transactor: tx,
		Pinger:     tx,
	}
}

// EnsureMongoIndexes creates the indexes the repositories rely on for
// ordering and for idempotent find-or-create.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		pastasCollection: {
			{Keys: bson.D{{Key: "nome", Value: 1}, {Key: "pastaPai", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "provas", Value: 1}}},
		},
		provasCollection: {
			{Keys: bson.D{{Key: "titulo", Value: 1}, {Key: "pasta", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "questoes", Value: 1}}},
		},
		questoesCollection: {
			{Keys: bson.D{{Key: "prova", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

func newObjectID() string {
	return primitive.NewObjectID().Hex()
}

func mongoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) ([]T, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(newestFirstSort))
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var doc T
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mongoErr(err)
	}
	return &doc, nil
}

func touch(update bson.M) bson.M {
	update["$set"] = bson.M{"updatedAt": time.Now()}
	return update
}

func updateOne(ctx context.Context, coll *mongo.Collection, id string, update bson.M) error {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, touch(update))
	if err != nil {
		return mongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// upsertOne inserts onInsert when nothing matches filter. A concurrent
// upsert can lose the race on the unique index; the winner is then read back.
func upsertOne[T any](ctx context.Context, coll *mongo.Collection, filter, onInsert bson.M, id func(*T) string) (*T, bool, error) {
	newID := newObjectID()
	onInsert["_id"] = newID
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc T
	err := coll.FindOneAndUpdate(ctx, filter, bson.M{"$setOnInsert": onInsert}, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		err = coll.FindOne(ctx, filter).Decode(&doc)
	}
	if err != nil {
		return nil, false, mongoErr(err)
	}
	return &doc, id(&doc) == newID, nil
}

type mongoTransactor struct {
	client  *mongo.Client
	enabled bool
}

func (t *mongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled {
		return fn(ctx)
	}
	sess, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (t *mongoTransactor) Ping(ctx context.Context) error {
	return t.client.Ping(ctx, readpref.Primary())
}

type mongoFolderRepository struct {
	coll *mongo.Collection
}

func (r *mongoFolderRepository) Create(ctx context.Context, pasta *model.Pasta) error {
	if pasta.ID == "" {
		pasta.ID = newObjectID()
	}
	if pasta.Provas == nil {
		pasta.Provas = []string{}
	}
	if pasta.Subpastas == nil {
		pasta.Subpastas = []string{}
	}
	pasta.Touch(time.Now())
	_, err := r.coll.InsertOne(ctx, pasta)
	return mongoErr(err)
}

func (r *mongoFolderRepository) FindByID(ctx context.Context, id string) (*model.Pasta, error) {
	return findOne[model.Pasta](ctx, r.coll, id)
}

func (r *mongoFolderRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Pasta, error) {
	if len(ids) == 0 {
		return []model.Pasta{}, nil
	}
	return findAll[model.Pasta](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *mongoFolderRepository) FindOrCreate(ctx context.Context, nome string) (*model.Pasta, bool, error) {
	now := time.Now()
	return upsertOne(ctx, r.coll,
		bson.M{"nome": nome, "pastaPai": nil},
		bson.M{"provas": []string{}, "subpastas": []string{}, "createdAt": now, "updatedAt": now},
		func(p *model.Pasta) string { return p.ID },
	)
}

func (r *mongoFolderRepository) List(ctx context.Context) ([]model.Pasta, error) {
	return findAll[model.Pasta](ctx, r.coll, bson.M{})
}

func (r *mongoFolderRepository) Update(ctx context.Context, pasta *model.Pasta) error {
	pasta.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": pasta.ID}, pasta)
	if err != nil {
		return mongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoFolderRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id)
}

func (r *mongoFolderRepository) AddProva(ctx context.Context, pastaID, provaID string) error {
	return updateOne(ctx, r.coll, pastaID, bson.M{"$addToSet": bson.M{"provas": provaID}})
}

func (r *mongoFolderRepository) PullProva(ctx context.Context, provaID string) error {
	_, err := r.coll.UpdateMany(ctx, bson.M{"provas": provaID}, touch(bson.M{"$pull": bson.M{"provas": provaID}}))
	return err
}

func (r *mongoFolderRepository) AddSubpasta(ctx context.Context, parentID, childID string) error {
	return updateOne(ctx, r.coll, parentID, bson.M{"$addToSet": bson.M{"subpastas": childID}})
}

func (r *mongoFolderRepository) PullSubpasta(ctx context.Context, childID string) error {
	_, err := r.coll.UpdateMany(ctx, bson.M{"subpastas": childID}, touch(bson.M{"$pull": bson.M{"subpastas": childID}}))
	return err
}

func (r *mongoFolderRepository) DetachChildren(ctx context.Context, parentID string) error {
	_, err := r.coll.UpdateMany(ctx, bson.M{"pastaPai": parentID}, bson.M{"$set": bson.M{"pastaPai": nil, "updatedAt": time.Now()}})
	return mongoErr(err)
}

func (r *mongoFolderRepository) SetParent(ctx context.Context, id string, parentID *string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"pastaPai": parentID, "updatedAt": time.Now()}})
	if err != nil {
		return mongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoExamRepository struct {
	coll *mongo.Collection
}

func (r *mongoExamRepository) Create(ctx context.Context, prova *model.Prova) error {
	if prova.ID == "" {
		prova.ID = newObjectID()
	}
	if prova.Questoes == nil {
		prova.Questoes = []string{}
	}
	prova.Touch(time.Now())
	_, err := r.coll.InsertOne(ctx, prova)
	return mongoErr(err)
}

func (r *mongoExamRepository) FindByID(ctx context.Context, id string) (*model.Prova, error) {
	return findOne[model.Prova](ctx, r.coll, id)
}

func (r *mongoExamRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Prova, error) {
	if len(ids) == 0 {
		return []model.Prova{}, nil
	}
	return findAll[model.Prova](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *mongoExamRepository) FindByPasta(ctx context.Context, pastaID string) ([]model.Prova, error) {
	return findAll[model.Prova](ctx, r.coll, bson.M{"pasta": pastaID})
}

func (r *mongoExamRepository) FindOrCreate(ctx context.Context, titulo, pastaID string) (*model.Prova, bool, error) {
	now := time.Now()
	return upsertOne(ctx, r.coll,
		bson.M{"titulo": titulo, "pasta": pastaID},
		bson.M{"questoes": []string{}, "createdAt": now, "updatedAt": now},
		func(p *model.Prova) string { return p.ID },
	)
}

func (r *mongoExamRepository) List(ctx context.Context) ([]model.Prova, error) {
	return findAll[model.Prova](ctx, r.coll, bson.M{})
}

func (r *mongoExamRepository) Update(ctx context.Context, prova *model.Prova) error {
	prova.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": prova.ID}, prova)
	if err != nil {
		return mongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoExamRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id)
}

func (r *mongoExamRepository) AddQuestao(ctx context.Context, provaID, questaoID string) error {
	return updateOne(ctx, r.coll, provaID, bson.M{"$addToSet": bson.M{"questoes": questaoID}})
}

func (r *mongoExamRepository) PullQuestao(ctx context.Context, questaoID string) error {
	_, err := r.coll.UpdateMany(ctx, bson.M{"questoes": questaoID}, touch(bson.M{"$pull": bson.M{"questoes": questaoID}}))
	return err
}

type mongoQuestionRepository struct {
	coll *mongo.Collection
}

func (r *mongoQuestionRepository) Create(ctx context.Context, questao *model.Questao) error {
	if questao.ID == "" {
		questao.ID = newObjectID()
	}
	questao.Touch(time.Now())
	_, err := r.coll.InsertOne(ctx, questao)
	return mongoErr(err)
}

func (r *mongoQuestionRepository) FindByID(ctx context.Context, id string) (*model.Questao, error) {
	return findOne[model.Questao](ctx, r.coll, id)
}

func (r *mongoQuestionRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Questao, error) {
	if len(ids) == 0 {
		return []model.Questao{}, nil
	}
	return findAll[model.Questao](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *mongoQuestionRepository) List(ctx context.Context) ([]model.Questao, error) {
	return findAll[model.Questao](ctx, r.coll, bson.M{})
}

func (r *mongoQuestionRepository) Update(ctx context.Context, questao *model.Questao) error {
	questao.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": questao.ID}, questao)
	if err != nil {
		return mongoErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoQuestionRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id)
}

func (r *mongoQuestionRepository) DeleteByProva(ctx context.Context, provaID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"prova": provaID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
