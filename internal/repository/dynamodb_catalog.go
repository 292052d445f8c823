package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	pkgconfig "github.com/cloud-wave-best-zizon/storefront-service/pkg/config"
	"github.com/shopspring/decimal"
)

// ScanAPI is the part of *dynamodb.Client the catalog loader needs.
type ScanAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// productRecord is the table layout.
type productRecord struct {
	ProductID string    `dynamodbav:"product_id"`
	NameFA    string    `dynamodbav:"name_fa"`
	NameEN    string    `dynamodbav:"name_en"`
	PriceUSD  usdAmount `dynamodbav:"price_usd"`
	Discount  int       `dynamodbav:"discount"`
	Category  string    `dynamodbav:"category"`
	Stock     int       `dynamodbav:"stock"`
	Sizes     []string  `dynamodbav:"sizes"`
	Colors    []string  `dynamodbav:"colors"`
	Images    []string  `dynamodbav:"images"`
	Active    bool      `dynamodbav:"active"`
}

// usdAmount keeps price_usd in decimal. The attribute may be stored as N or S.
type usdAmount decimal.Decimal

func (a usdAmount) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: decimal.Decimal(a).String()}, nil
}

func (a *usdAmount) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	default:
		return fmt.Errorf("price_usd: unsupported attribute type %T", av)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("price_usd: %w", err)
	}
	*a = usdAmount(d)
	return nil
}

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:       r.ProductID,
		NameFA:   r.NameFA,
		NameEN:   r.NameEN,
		PriceUSD: decimal.Decimal(r.PriceUSD),
		Discount: r.Discount,
		Category: domain.Category(r.Category),
		Stock:    r.Stock,
		Sizes:    r.Sizes,
		Colors:   r.Colors,
		Images:   r.Images,
		Active:   r.Active,
	}
}

func NewDynamoDBClient(ctx context.Context, cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg), nil
}

// LoadDynamoDBProducts scans the whole table once. Only active items are read;
// the table is never written.
func LoadDynamoDBProducts(ctx context.Context, client ScanAPI, tableName string) ([]domain.Product, error) {
	filter := expression.Name("active").Equal(expression.Value(true))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan expression: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(tableName),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		FilterExpression:          expr.Filter(),
	}

	var products []domain.Product
	paginator := dynamodb.NewScanPaginator(client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog table: %w", err)
		}

		var records []productRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal products: %w", err)
		}
		for _, rec := range records {
			products = append(products, rec.toDomain())
		}
	}

	// Scan은 순서를 보장하지 않으므로 id 순으로 정렬
	slices.SortStableFunc(products, func(a, b domain.Product) int {
		if len(a.ID) != len(b.ID) {
			return cmp.Compare(len(a.ID), len(b.ID))
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return products, nil
}
